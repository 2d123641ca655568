package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/furball-art/furball/internal/did"
	"github.com/furball-art/furball/internal/docnet"
	"github.com/furball-art/furball/internal/models"
)

type Option func(*GRPCClient)

// WithRequestTimeout bounds every document call. Zero means no bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.timeout = d }
}

func WithMaxMessageBytes(n int) Option {
	return func(c *GRPCClient) { c.maxMessageBytes = n }
}

// WithDialOptions appends extra dial options, e.g. a bufconn dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

type GRPCClient struct {
	endpointURL     string
	timeout         time.Duration
	maxMessageBytes int
	dialOpts        []grpc.DialOption
	now             func() time.Time

	conn   *grpc.ClientConn
	client docnet.DocumentServiceClient
	health healthpb.HealthClient

	mu          sync.RWMutex
	provider    *did.Provider
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(docnet.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// accessTokenInterceptor attaches the session token to document calls. When
// the node reports an expired token it re-authenticates with the DID
// provider and retries the call once.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == docnet.AuthenticateMethod || !strings.HasPrefix(method, "/"+docnet.ServiceName+"/") {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, s.token()), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != docnet.ErrTokenExpired.Error() {
		return err
	}

	if aerr := s.authenticate(ctx); aerr != nil {
		return aerr
	}

	return invoker(withAccessToken(ctx, s.token()), method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	if s.maxMessageBytes > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(s.maxMessageBytes),
			grpc.MaxCallSendMsgSize(s.maxMessageBytes),
		))
	}
	opts = append(opts, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.endpointURL, err)
	}
	s.conn = conn
	s.client = docnet.NewDocumentServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SetDIDProvider authenticates p with the node and makes it the session
// identity. Document calls fail with ErrUninitializedSession until it
// succeeds.
func (s *GRPCClient) SetDIDProvider(ctx context.Context, p *did.Provider) error {
	if p == nil {
		return fmt.Errorf("set did provider: %w", ErrUninitializedSession)
	}

	s.mu.Lock()
	prev := s.provider
	s.provider = p
	s.mu.Unlock()

	if err := s.authenticate(ctx); err != nil {
		s.mu.Lock()
		s.provider = prev
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *GRPCClient) authenticate(ctx context.Context) error {
	s.mu.RLock()
	p := s.provider
	s.mu.RUnlock()
	if p == nil {
		return ErrUninitializedSession
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	issuedAt := s.now().Unix()
	resp, err := s.client.Authenticate(ctx, &docnet.AuthenticateRequest{
		DID:       p.DID(),
		IssuedAt:  issuedAt,
		Signature: p.Sign(docnet.AuthMessage(p.DID(), issuedAt)),
	})
	if err != nil {
		return fmt.Errorf("authenticate %s: %w", p.DID(), s.mapError(err))
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.mu.Unlock()
	return nil
}

func (s *GRPCClient) sessionReady() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil || s.accessToken == "" {
		return ErrUninitializedSession
	}
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) CreateDocument(ctx context.Context, content []byte) (models.DocID, error) {
	if err := s.sessionReady(); err != nil {
		return "", err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateDocument(ctx, &docnet.CreateDocumentRequest{Content: content})
	if err != nil {
		return "", fmt.Errorf("create document: %w", s.mapError(err))
	}
	return models.DocID(resp.ID), nil
}

func (s *GRPCClient) LoadDocument(ctx context.Context, id models.DocID) ([]byte, error) {
	if err := s.sessionReady(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.LoadDocument(ctx, &docnet.LoadDocumentRequest{ID: id.String()})
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", id, s.mapError(err))
	}
	return resp.Content, nil
}

func (s *GRPCClient) UpdateDocument(ctx context.Context, id models.DocID, content []byte) error {
	if err := s.sessionReady(); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.UpdateDocument(ctx, &docnet.UpdateDocumentRequest{ID: id.String(), Content: content})
	if err != nil {
		return fmt.Errorf("update document %s: %w", id, s.mapError(err))
	}
	return nil
}

// Ping asks the node's health service whether the document service is up.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: docnet.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: node status %s", ErrNetwork, resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNetwork) || errors.Is(err, ErrUninitializedSession) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", ErrNetwork, st.Code(), st.Message())
	}
}
