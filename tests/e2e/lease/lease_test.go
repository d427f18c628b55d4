//go:build e2e

package lease_test

import (
	"net/http"
	"sync"
	"testing"

	resdto "lease-market/internal/handler/dto/response"
	"lease-market/tests/common/builder"
	"lease-market/tests/common/dbtest"
	"lease-market/tests/common/httptest"
	"lease-market/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type LeaseE2ESuite struct {
	e2e.SharedSuite
}

func TestLeaseE2E(t *testing.T) {
	suite.Run(t, new(LeaseE2ESuite))
}

func leaseBody(masterID int64, from, to string) any {
	return builder.NewLeaseRequestBuilder().With(func(b *builder.LeaseRequestBuilder) {
		b.MasterID = masterID
		b.TimeFrom = from
		b.TimeTo = to
	}).BuildRequestDTO()
}

func (s *LeaseE2ESuite) TestFullDayIsBilledAtCap() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(1, "2024-05-01 00:00:00", "2024-05-01 23:00:00"), "e2e-full-day")

	var body resdto.ContractResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Equal("160.00", body.Price)
	s.Len(body.Hours, 24)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Request-ID": "e2e-full-day"})
}

func (s *LeaseE2ESuite) TestSequentialConflict() {
	first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(1, "2024-05-01 10:00:00", "2024-05-01 10:00:00"), "")
	httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, nil)

	second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(2, "2024-05-01 10:00:00", "2024-05-01 10:00:00"), "")
	httptest.AssertErrorResponse(s.T(), second, http.StatusConflict,
		`Error. Resource #1 "Uncle Tom" is busy. Busy hours: "2024-05-01 10"`)

	s.Equal(1, dbtest.CountContracts(s.T(), s.DB, 1))
}

func (s *LeaseE2ESuite) TestVIPOverride() {
	first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(1, "2024-05-01 10:00:00", "2024-05-01 12:00:00"), "")
	httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, nil)

	vip := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(3, "2024-05-01 10:00:00", "2024-05-01 12:00:00"), "")
	httptest.AssertSuccessResponse(s.T(), vip, http.StatusCreated, nil)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/resources/1/contracts?from=2024-05-01&to=2024-05-01", nil, "")
	var contracts []resdto.ContractResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &contracts)
	s.Require().Len(contracts, 2)
	s.Equal(int64(1), contracts[0].MasterID)
	s.True(contracts[1].MasterVIP)
}

func (s *LeaseE2ESuite) TestOvertime() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(1, "2024-05-01 08:00:00", "2024-05-01 23:00:00"), "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity,
		`cannot work more than 16 hours a day. Overloaded days: "2024-05-01"`)
	s.Zero(dbtest.CountContracts(s.T(), s.DB, 1))
}

func (s *LeaseE2ESuite) TestConcurrentRequestsForOneHour() {
	const workers = 6
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
				leaseBody(int64(1+i%2), "2024-05-02 09:00:00", "2024-05-02 09:00:00"), "")
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(1, codes[http.StatusCreated])
	s.Equal(workers-1, codes[http.StatusConflict])
	s.Equal(1, dbtest.CountContracts(s.T(), s.DB, 1))
}

func (s *LeaseE2ESuite) TestLookups() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/masters/3", nil, "")
	var m resdto.MasterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &m)
	s.True(m.VIP)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/resources/1", nil, "")
	var r resdto.ResourceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &r)
	s.Equal("10.00", r.PricePerHour)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/masters/42", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Master not found")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/leases",
		leaseBody(42, "2024-05-01 10:00:00", "2024-05-01 10:00:00"), "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "master not found")
}
