package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/groupauth/internal/client/config"
	"github.com/dmitrijs2005/groupauth/internal/logging"
	pb "github.com/dmitrijs2005/groupauth/internal/proto"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	attempts    int
	backoff     time.Duration
	callTimeout time.Duration
	logger      logging.Logger
}

// New dials cfg.ServerEndpointAddr lazily; the first call establishes the
// connection. Extra dial options are appended to the defaults.
func New(cfg *config.Config, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(cfg.ServerEndpointAddr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		conn:        conn,
		client:      pb.NewAuthServiceClient(conn),
		attempts:    cfg.RetryAttempts,
		backoff:     cfg.RetryBackoff,
		callTimeout: cfg.CallTimeout,
		logger:      logger.With("module", "credential_client"),
	}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// invoke runs call under the retry policy and returns the last error.
func (c *GRPCClient) invoke(ctx context.Context, method string, call func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(c.attempts-1), retry.NewConstant(c.backoff))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		err := call(callCtx)
		if err == nil {
			return nil
		}
		if IsRetryable(err) && ctx.Err() == nil {
			c.logger.Warn(ctx, "call failed, will retry", "method", method, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *GRPCClient) CheckGroup(ctx context.Context, groupName, phrase string) CheckGroupResult {
	req := &pb.GroupRequest{GroupName: groupName, PasswordPhrase: phrase}

	var resp *pb.GroupResponse
	err := c.invoke(ctx, "CheckGroup", func(ctx context.Context) error {
		var err error
		resp, err = c.client.CheckGroup(ctx, req)
		return err
	})
	if err != nil {
		c.logger.Error(ctx, "CheckGroup failed", "group", groupName, "error", err)
		return CheckGroupResult{Error: describe(err)}
	}

	return CheckGroupResult{
		Exists:           resp.GetExists(),
		ValidPassword:    resp.GetValidPassword(),
		GroupDescription: resp.GetGroupDescription(),
		Message:          resp.GetMessage(),
	}
}

func (c *GRPCClient) GenerateGroupPassword(ctx context.Context, groupName string) GenerateResult {
	req := &pb.GenerateRequest{GroupName: groupName}

	var resp *pb.GenerateResponse
	err := c.invoke(ctx, "GenerateGroupPassword", func(ctx context.Context) error {
		var err error
		resp, err = c.client.GenerateGroupPassword(ctx, req)
		return err
	})
	if err != nil {
		c.logger.Error(ctx, "GenerateGroupPassword failed", "group", groupName, "error", err)
		return GenerateResult{Error: describe(err)}
	}

	return GenerateResult{
		Success:  resp.GetSuccess(),
		Password: resp.GetPassword(),
		Error:    resp.GetError(),
	}
}
