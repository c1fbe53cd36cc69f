package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/adaptive-monetization/go-engine/gen/monetize"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/orchestrator"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #region client-struct
// ModelClient wraps the gRPC connection to the Python model service. It
// implements the engine's EmotionAnalyzer, PolicyProvider, and
// RiskAssessor interfaces.
type ModelClient struct {
	conn   *grpc.ClientConn
	client pb.ModelServiceClient
}
// #endregion client-struct

// #region constructor
// NewModelClient connects to the model service gRPC server.
func NewModelClient(addr string) (*ModelClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &ModelClient{
		conn:   conn,
		client: pb.NewModelServiceClient(conn),
	}, nil
}

// NewModelClientWithService creates a ModelClient with an injected
// service implementation. Used for testing without a real gRPC
// connection.
func NewModelClientWithService(svc pb.ModelServiceClient) *ModelClient {
	return &ModelClient{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *ModelClient) Close() error {
	return c.conn.Close()
}
// #endregion close

// #region analyze
// Analyze sends an interaction record for emotion inference.
func (c *ModelClient) Analyze(ctx context.Context, record map[string]any) (strategy.EmotionSignal, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return strategy.EmotionSignal{}, fmt.Errorf("marshal record: %w", err)
	}

	resp, err := c.client.AnalyzeEmotion(ctx, &pb.AnalyzeEmotionRequest{
		RecordJson: string(recordJSON),
	})
	if err != nil {
		return strategy.EmotionSignal{}, fmt.Errorf("analyze emotion rpc: %w", err)
	}

	return strategy.EmotionSignal{
		Sentiment: resp.Sentiment,
		Intensity: resp.Intensity,
	}, nil
}
// #endregion analyze

// #region choose-action
// ChooseAction asks the policy model for the next action given the
// state and emotional context.
func (c *ModelClient) ChooseAction(ctx context.Context, st map[string]any, emotion strategy.EmotionSignal) (strategy.ActionID, error) {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}

	resp, err := c.client.ChooseAction(ctx, &pb.ChooseActionRequest{
		StateJson: string(stateJSON),
		Sentiment: emotion.Sentiment,
		Intensity: emotion.Intensity,
	})
	if err != nil {
		return "", fmt.Errorf("choose action rpc: %w", err)
	}
	if resp.Action == "" {
		return "", fmt.Errorf("choose action rpc: empty action")
	}
	return strategy.ActionID(resp.Action), nil
}
// #endregion choose-action

// #region estimate-reward
// EstimateReward asks the reward model for the reward of taking action
// in the given state.
func (c *ModelClient) EstimateReward(ctx context.Context, action strategy.ActionID, st map[string]any) (float64, error) {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return 0, fmt.Errorf("marshal state: %w", err)
	}

	resp, err := c.client.EstimateReward(ctx, &pb.EstimateRewardRequest{
		Action:    string(action),
		StateJson: string(stateJSON),
	})
	if err != nil {
		return 0, fmt.Errorf("estimate reward rpc: %w", err)
	}
	return resp.Reward, nil
}
// #endregion estimate-reward

// #region assess-risk
// Assess asks the risk model to score a candidate strategy's state for
// the current context.
func (c *ModelClient) Assess(ctx context.Context, currentContext string, st map[string]any) (orchestrator.RiskAssessment, error) {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return orchestrator.RiskAssessment{}, fmt.Errorf("marshal state: %w", err)
	}

	resp, err := c.client.AssessRisk(ctx, &pb.AssessRiskRequest{
		CurrentContext: currentContext,
		StateJson:      string(stateJSON),
	})
	if err != nil {
		return orchestrator.RiskAssessment{}, fmt.Errorf("assess risk rpc: %w", err)
	}
	return orchestrator.RiskAssessment{
		Score: resp.Score,
		Veto:  resp.Veto,
	}, nil
}
// #endregion assess-risk
