package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// TipServiceName is the fully-qualified name of the TipService service.
	TipServiceName = "tipcalc.v1.TipService"
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "tipcalc.v1.AuthService"
)

const (
	TipServiceEvaluateProcedure     = "/tipcalc.v1.TipService/Evaluate"
	TipServiceListPresetsProcedure  = "/tipcalc.v1.TipService/ListPresets"
	TipServiceCreatePresetProcedure = "/tipcalc.v1.TipService/CreatePreset"
	TipServiceDeletePresetProcedure = "/tipcalc.v1.TipService/DeletePreset"
	AuthServiceLoginProcedure       = "/tipcalc.v1.AuthService/Login"
)

// TipServiceHandler is implemented by the server side of TipService.
type TipServiceHandler interface {
	Evaluate(context.Context, *connect.Request[EvaluateRequest]) (*connect.Response[EvaluateResponse], error)
	ListPresets(context.Context, *connect.Request[ListPresetsRequest]) (*connect.Response[ListPresetsResponse], error)
	CreatePreset(context.Context, *connect.Request[CreatePresetRequest]) (*connect.Response[CreatePresetResponse], error)
	DeletePreset(context.Context, *connect.Request[DeletePresetRequest]) (*connect.Response[DeletePresetResponse], error)
}

// AuthServiceHandler is implemented by the server side of AuthService.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
}

// NewTipServiceHandler builds an HTTP handler for TipService. It returns the
// path on which to mount the handler and the handler itself.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	mux := http.NewServeMux()
	mux.Handle(TipServiceEvaluateProcedure, connect.NewUnaryHandler(TipServiceEvaluateProcedure, svc.Evaluate, opts...))
	mux.Handle(TipServiceListPresetsProcedure, connect.NewUnaryHandler(TipServiceListPresetsProcedure, svc.ListPresets, opts...))
	mux.Handle(TipServiceCreatePresetProcedure, connect.NewUnaryHandler(TipServiceCreatePresetProcedure, svc.CreatePreset, opts...))
	mux.Handle(TipServiceDeletePresetProcedure, connect.NewUnaryHandler(TipServiceDeletePresetProcedure, svc.DeletePreset, opts...))
	return "/" + TipServiceName + "/", mux
}

// NewAuthServiceHandler builds an HTTP handler for AuthService.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	return "/" + AuthServiceName + "/", mux
}

func withJSON(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// TipServiceClient is a client for TipService.
type TipServiceClient interface {
	Evaluate(context.Context, *connect.Request[EvaluateRequest]) (*connect.Response[EvaluateResponse], error)
	ListPresets(context.Context, *connect.Request[ListPresetsRequest]) (*connect.Response[ListPresetsResponse], error)
	CreatePreset(context.Context, *connect.Request[CreatePresetRequest]) (*connect.Response[CreatePresetResponse], error)
	DeletePreset(context.Context, *connect.Request[DeletePresetRequest]) (*connect.Response[DeletePresetResponse], error)
}

// NewTipServiceClient constructs a client for TipService at baseURL
// (e.g., http://localhost:8080).
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &tipServiceClient{
		evaluate:     connect.NewClient[EvaluateRequest, EvaluateResponse](httpClient, baseURL+TipServiceEvaluateProcedure, opts...),
		listPresets:  connect.NewClient[ListPresetsRequest, ListPresetsResponse](httpClient, baseURL+TipServiceListPresetsProcedure, opts...),
		createPreset: connect.NewClient[CreatePresetRequest, CreatePresetResponse](httpClient, baseURL+TipServiceCreatePresetProcedure, opts...),
		deletePreset: connect.NewClient[DeletePresetRequest, DeletePresetResponse](httpClient, baseURL+TipServiceDeletePresetProcedure, opts...),
	}
}

type tipServiceClient struct {
	evaluate     *connect.Client[EvaluateRequest, EvaluateResponse]
	listPresets  *connect.Client[ListPresetsRequest, ListPresetsResponse]
	createPreset *connect.Client[CreatePresetRequest, CreatePresetResponse]
	deletePreset *connect.Client[DeletePresetRequest, DeletePresetResponse]
}

func (c *tipServiceClient) Evaluate(ctx context.Context, req *connect.Request[EvaluateRequest]) (*connect.Response[EvaluateResponse], error) {
	return c.evaluate.CallUnary(ctx, req)
}

func (c *tipServiceClient) ListPresets(ctx context.Context, req *connect.Request[ListPresetsRequest]) (*connect.Response[ListPresetsResponse], error) {
	return c.listPresets.CallUnary(ctx, req)
}

func (c *tipServiceClient) CreatePreset(ctx context.Context, req *connect.Request[CreatePresetRequest]) (*connect.Response[CreatePresetResponse], error) {
	return c.createPreset.CallUnary(ctx, req)
}

func (c *tipServiceClient) DeletePreset(ctx context.Context, req *connect.Request[DeletePresetRequest]) (*connect.Response[DeletePresetResponse], error) {
	return c.deletePreset.CallUnary(ctx, req)
}

// AuthServiceClient is a client for AuthService.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
}

// NewAuthServiceClient constructs a client for AuthService at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &authServiceClient{
		login: connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

type authServiceClient struct {
	login *connect.Client[LoginRequest, LoginResponse]
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
