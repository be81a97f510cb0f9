package update_order_status

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretworks/repairshop-service/internal/domain"
	updateOrderStatus "github.com/fretworks/repairshop-service/internal/usecase/update_order_status"
)

type stubUseCase struct {
	resp *updateOrderStatus.Response
	err  error

	gotReq *updateOrderStatus.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *updateOrderStatus.Request) (*updateOrderStatus.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc UpdateOrderStatusUseCase, orderID, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/orders/{orderId}/status", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch,
		"/api/v1/orders/"+orderID+"/status", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{
		resp: &updateOrderStatus.Response{
			OrderID:   id,
			Displayed: domain.StatusConfirmed,
			Previous:  domain.StatusPending,
			State:     domain.TransitionConfirmed,
			Distribution: domain.StatusDistribution{
				Pending: 1, Active: 2, Completed: 0, Total: 3,
			},
		},
	}

	rec := doRequest(t, uc, id.String(), `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, id, uc.gotReq.OrderID)
	assert.Equal(t, "confirmed", uc.gotReq.Status)

	var body UpdateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "已确认", body.StatusLabel)
	assert.Equal(t, "pending", body.Previous)
	assert.Equal(t, 2, body.Distribution.Active)
}

func TestHandle_InvalidOrderID(t *testing.T) {
	uc := &stubUseCase{}

	rec := doRequest(t, uc, "not-a-uuid", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidStatus(t *testing.T) {
	uc := &stubUseCase{err: updateOrderStatus.ErrInvalidStatus}

	rec := doRequest(t, uc, uuid.NewString(), `{"status":"shipped"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &stubUseCase{err: updateOrderStatus.ErrOrderNotFound}

	rec := doRequest(t, uc, uuid.NewString(), `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_RolledBackUpdate(t *testing.T) {
	uc := &stubUseCase{err: updateOrderStatus.ErrUpdateFailed}

	rec := doRequest(t, uc, uuid.NewString(), `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "已恢复原状态")
}
