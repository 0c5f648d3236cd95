package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/bibbank/iban/pkg/auth"
	"github.com/bibbank/iban/pkg/observability"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func startTestServer(t *testing.T, validator auth.TokenValidator) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(buildTestHandler(validator != nil, &mockValidationRepo{}), ServerConfig{Validator: validator}, observability.NopLogger())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func withToken(t *testing.T, svc *auth.JWTService, scopes ...string) context.Context {
	t.Helper()
	token, err := svc.IssueToken("svc-payments", scopes)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestServer_EndToEnd(t *testing.T) {
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{Secret: testSecret, Issuer: "bib-gateway", Expiration: time.Minute})
	require.NoError(t, err)
	conn := startTestServer(t, jwtSvc)

	t.Run("validate over the json codec", func(t *testing.T) {
		var resp ValidateIbanResponse
		err := conn.Invoke(withToken(t, jwtSvc, auth.ScopeValidate), "/"+ServiceName+"/ValidateIban",
			&ValidateIbanRequest{Value: "FR14 2004 1010 0505 0001 3M02 606"}, &resp, grpc.CallContentSubtype(CodecName))
		require.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Equal(t, "20041", resp.BankIdentifier)
		assert.Equal(t, "01005", resp.BranchIdentifier)
		require.NotNil(t, resp.Country)
		assert.True(t, resp.Country.Sepa)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		var resp ValidateIbanResponse
		err := conn.Invoke(context.Background(), "/"+ServiceName+"/ValidateIban",
			&ValidateIbanRequest{Value: "FR1420041010050500013M02606"}, &resp, grpc.CallContentSubtype(CodecName))
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("wrong scope is rejected", func(t *testing.T) {
		var resp ValidationRecordMessage
		err := conn.Invoke(withToken(t, jwtSvc, auth.ScopeValidate), "/"+ServiceName+"/GetValidation",
			&GetValidationRequest{ID: "00000000-0000-0000-0000-000000000001"}, &resp, grpc.CallContentSubtype(CodecName))
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("health check needs no token", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	})
}

func TestServer_AuthDisabled(t *testing.T) {
	conn := startTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var resp ListCountriesResponse
	err := conn.Invoke(ctx, "/"+ServiceName+"/ListCountries", &ListCountriesRequest{SepaOnly: true}, &resp, grpc.CallContentSubtype(CodecName))
	require.NoError(t, err)
	assert.NotZero(t, resp.TotalCount)
	assert.Len(t, resp.Countries, int(resp.TotalCount))
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&BuildIbanRequest{CountryCode: "DE", Bban: "370400440532013000"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"country_code":"DE","bban":"370400440532013000"}`, string(b))

	var req BuildIbanRequest
	require.NoError(t, c.Unmarshal(nil, &req), "empty payload decodes to the zero message")
	assert.Error(t, c.Unmarshal([]byte("{"), &req))
}
