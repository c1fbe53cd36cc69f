package provider

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/adaptive-monetization/go-engine/gen/monetize"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #region mock
type mockModelService struct {
	pb.ModelServiceClient

	analyzeResp *pb.AnalyzeEmotionResponse
	analyzeErr  error

	chooseResp *pb.ChooseActionResponse
	chooseErr  error

	rewardResp *pb.EstimateRewardResponse
	rewardErr  error

	assessResp *pb.AssessRiskResponse
	assessErr  error
}

func (m *mockModelService) AnalyzeEmotion(_ context.Context, _ *pb.AnalyzeEmotionRequest, _ ...grpc.CallOption) (*pb.AnalyzeEmotionResponse, error) {
	return m.analyzeResp, m.analyzeErr
}

func (m *mockModelService) ChooseAction(_ context.Context, _ *pb.ChooseActionRequest, _ ...grpc.CallOption) (*pb.ChooseActionResponse, error) {
	return m.chooseResp, m.chooseErr
}

func (m *mockModelService) EstimateReward(_ context.Context, _ *pb.EstimateRewardRequest, _ ...grpc.CallOption) (*pb.EstimateRewardResponse, error) {
	return m.rewardResp, m.rewardErr
}

func (m *mockModelService) AssessRisk(_ context.Context, _ *pb.AssessRiskRequest, _ ...grpc.CallOption) (*pb.AssessRiskResponse, error) {
	return m.assessResp, m.assessErr
}

// #endregion mock

func TestAnalyze(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		analyzeResp: &pb.AnalyzeEmotionResponse{Sentiment: "positive", Intensity: 0.8},
	})

	sig, err := c.Analyze(context.Background(), map[string]any{"context": "default"})
	if err != nil {
		t.Fatal(err)
	}
	want := strategy.EmotionSignal{Sentiment: "positive", Intensity: 0.8}
	if sig != want {
		t.Errorf("signal = %+v, want %+v", sig, want)
	}
}

func TestAnalyze_RPCError(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		analyzeErr: errors.New("unavailable"),
	})

	if _, err := c.Analyze(context.Background(), nil); err == nil {
		t.Error("expected error")
	}
}

func TestChooseAction(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		chooseResp: &pb.ChooseActionResponse{Action: "upsell"},
	})

	action, err := c.ChooseAction(context.Background(), map[string]any{"context": "default"}, strategy.NeutralSignal())
	if err != nil {
		t.Fatal(err)
	}
	if action != "upsell" {
		t.Errorf("action = %q, want upsell", action)
	}
}

func TestChooseAction_EmptyActionIsError(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		chooseResp: &pb.ChooseActionResponse{Action: ""},
	})

	if _, err := c.ChooseAction(context.Background(), nil, strategy.NeutralSignal()); err == nil {
		t.Error("expected error for empty action")
	}
}

func TestEstimateReward(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		rewardResp: &pb.EstimateRewardResponse{Reward: 2.5},
	})

	reward, err := c.EstimateReward(context.Background(), "upsell", nil)
	if err != nil {
		t.Fatal(err)
	}
	if reward != 2.5 {
		t.Errorf("reward = %v, want 2.5", reward)
	}
}

func TestAssess(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		assessResp: &pb.AssessRiskResponse{Score: 0.7, Veto: false},
	})

	a, err := c.Assess(context.Background(), "default", map[string]any{"plan": "pro"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != 0.7 || a.Veto {
		t.Errorf("assessment = %+v", a)
	}
}

func TestAssess_RPCError(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{
		assessErr: errors.New("unavailable"),
	})

	if _, err := c.Assess(context.Background(), "default", nil); err == nil {
		t.Error("expected error")
	}
}
