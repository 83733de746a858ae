package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	alice = domain.ContractAddress("alice")
	bob   = domain.ContractAddress("bob")
	asset = domain.ContractAddress("asset/test")
)

// stubVerifier accepts tokens of the form "ok:<address>".
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (domain.Address, error) {
	addr, ok := strings.CutPrefix(token, "ok:")
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return domain.Address(addr), nil
}

type fixture struct {
	registry *mocks.MockRegistryUseCase
	escrow   *mocks.MockEscrowUseCase
	tokens   *mocks.MockTokenUseCase
	handler  http.Handler
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		registry: mocks.NewMockRegistryUseCase(t),
		escrow:   mocks.NewMockEscrowUseCase(t),
		tokens:   mocks.NewMockTokenUseCase(t),
	}
	f.handler = NewHandler(Deps{
		Registry: f.registry,
		Escrow:   f.escrow,
		Tokens:   f.tokens,
		Verifier: stubVerifier{},
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("novafund_up 1\n"))
		}),
	}).Router()
	return f
}

func (f fixture) do(method, path, body string, tokens ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, tok := range tokens {
		req.Header.Add("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// signedBy matches a context authorized by id.
func signedBy(id domain.Address) any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return auth.NewAuthorizer().RequireAuth(ctx, id) == nil
	})
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().
		CreateCampaign(signedBy(alice), alice, "Roof", domain.NewAmount(1000)).
		Return(uint32(7), nil)

	body := `{"creator":"` + alice.String() + `","title":"Roof","target":"1000"}`
	rec := f.do(http.MethodPost, "/api/v1/registry/campaigns", body, "ok:"+alice.String())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestMultipleSigners(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().
		Donate(mock.MatchedBy(func(ctx context.Context) bool {
			return assert.ElementsMatch(t, []domain.Address{alice, bob}, auth.Identities(ctx))
		}), uint32(3), bob, domain.NewAmount(5)).
		Return(nil)

	body := `{"donor":"` + bob.String() + `","amount":5}`
	rec := f.do(http.MethodPost, "/api/v1/registry/campaigns/3/donations", body,
		"ok:"+alice.String(), "ok:"+bob.String())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvalidTokenIsRejectedBeforeUseCase(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/escrow/withdraw", "", "forged")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec).Error)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/escrow/withdraw", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorKindsMapToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrAlreadyInitialized, http.StatusConflict},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrCampaignExpired, http.StatusConflict},
		{domain.ErrDeadlineNotReached, http.StatusConflict},
		{domain.ErrTargetNotMet, http.StatusConflict},
		{domain.ErrArithmeticOverflow, http.StatusUnprocessableEntity},
		{domain.ErrInsufficientBalance, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(domain.Kind(tc.err), func(t *testing.T) {
			f := newFixture(t)
			f.escrow.EXPECT().Withdraw(mock.Anything).Return(domain.Amount{}, tc.err)

			rec := f.do(http.MethodPost, "/api/v1/escrow/withdraw", "", "ok:"+alice.String())
			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, domain.Kind(tc.err), decodeError(t, rec).Error)
		})
	}
}

func TestInternalErrorIsHidden(t *testing.T) {
	f := newFixture(t)
	f.escrow.EXPECT().GetCampaignInfo(mock.Anything).Return(domain.CampaignInfo{}, errors.New("disk on fire"))

	rec := f.do(http.MethodGet, "/api/v1/escrow/info", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "internal", resp.Error)
	assert.NotContains(t, resp.Message, "disk")
}

func TestEscrowInfo(t *testing.T) {
	f := newFixture(t)
	f.escrow.EXPECT().GetCampaignInfo(mock.Anything).Return(domain.CampaignInfo{
		Raised:   domain.NewAmount(1100),
		Target:   domain.NewAmount(1000),
		Deadline: 100,
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/escrow/info", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"raised":"1100","target":"1000","deadline":100}`, rec.Body.String())
}

func TestEscrowInitializeNeedsNoToken(t *testing.T) {
	f := newFixture(t)
	f.escrow.EXPECT().
		Initialize(mock.Anything, alice, asset, uint64(100), domain.NewAmount(10)).
		Return(nil)

	body := `{"recipient":"` + alice.String() + `","asset":"` + asset.String() + `","deadline":100,"target":"10"}`
	rec := f.do(http.MethodPost, "/api/v1/escrow/initialize", body)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEscrowWithdraw(t *testing.T) {
	f := newFixture(t)
	f.escrow.EXPECT().Withdraw(signedBy(alice)).Return(domain.NewAmount(1100), nil)

	rec := f.do(http.MethodPost, "/api/v1/escrow/withdraw", "", "ok:"+alice.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"released":"1100"}`, rec.Body.String())
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().GetAllCampaigns(mock.Anything).Return([]domain.Campaign{
		{ID: 1, Creator: alice, Title: "a", Target: domain.NewAmount(200), Raised: domain.NewAmount(50)},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/registry/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"creator":"`+alice.String()+`","title":"a","target":"200","raised":"50","progress":25}]`,
		rec.Body.String())
}

func TestGetCampaignBadID(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/registry/campaigns/-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.registry.EXPECT().GetCampaign(mock.Anything, uint32(9)).Return(nil, domain.ErrNotFound)
	rec = f.do(http.MethodGet, "/api/v1/registry/campaigns/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/registry/initialize", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/registry/initialize", `{"admin":"nope"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidAddress", decodeError(t, rec).Error)

	rec = f.do(http.MethodPost, "/api/v1/escrow/donations", `{"donor":"`+alice.String()+`","amount":"1.5"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidAmount", decodeError(t, rec).Error)

	rec = f.do(http.MethodPost, "/api/v1/escrow/donations", `{"donor":"`+alice.String()+`","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignTitleValidation(t *testing.T) {
	f := newFixture(t)
	create := func(title string) *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]string{"creator": alice.String(), "title": title, "target": "1"})
		require.NoError(t, err)
		return f.do(http.MethodPost, "/api/v1/registry/campaigns", string(body), "ok:"+alice.String())
	}

	assert.Equal(t, http.StatusBadRequest, create("bad\x00title").Code)
	assert.Equal(t, http.StatusBadRequest, create("two\nlines").Code)

	// the limit counts characters, not bytes
	long := strings.Repeat("é", 1024)
	f.registry.EXPECT().
		CreateCampaign(signedBy(alice), alice, long, domain.NewAmount(1)).
		Return(uint32(1), nil).
		Once()
	assert.Equal(t, http.StatusCreated, create(long).Code)
	assert.Equal(t, http.StatusBadRequest, create(long+"é").Code)
}

func TestTokenRoutes(t *testing.T) {
	f := newFixture(t)
	f.tokens.EXPECT().Balance(mock.Anything, asset, alice).Return(domain.NewAmount(42), nil)
	f.tokens.EXPECT().
		Transfer(signedBy(alice), asset, alice, bob, domain.NewAmount(2)).
		Return(nil)
	f.tokens.EXPECT().
		Mint(mock.Anything, asset, bob, domain.NewAmount(3)).
		Return(domain.ErrUnauthorized)

	rec := f.do(http.MethodGet, "/api/v1/tokens/"+asset.String()+"/balances/"+alice.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"asset":"`+asset.String()+`","holder":"`+alice.String()+`","balance":"42"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/v1/tokens/"+asset.String()+"/transfers",
		`{"from":"`+alice.String()+`","to":"`+bob.String()+`","amount":"2"}`, "ok:"+alice.String())
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/tokens/"+asset.String()+"/mint",
		`{"to":"`+bob.String()+`","amount":"3"}`, "ok:"+bob.String())
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/tokens/bad/balances/"+alice.String(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsRoute(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "novafund_up")
}
