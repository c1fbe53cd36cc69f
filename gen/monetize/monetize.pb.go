// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: monetize.proto

package monetize

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AnalyzeEmotionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordJson    string                 `protobuf:"bytes,1,opt,name=record_json,json=recordJson,proto3" json:"record_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeEmotionRequest) Reset() {
	*x = AnalyzeEmotionRequest{}
	mi := &file_monetize_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeEmotionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeEmotionRequest) ProtoMessage() {}

func (x *AnalyzeEmotionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeEmotionRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeEmotionRequest) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeEmotionRequest) GetRecordJson() string {
	if x != nil {
		return x.RecordJson
	}
	return ""
}

type AnalyzeEmotionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sentiment     string                 `protobuf:"bytes,1,opt,name=sentiment,proto3" json:"sentiment,omitempty"`
	Intensity     float64                `protobuf:"fixed64,2,opt,name=intensity,proto3" json:"intensity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeEmotionResponse) Reset() {
	*x = AnalyzeEmotionResponse{}
	mi := &file_monetize_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeEmotionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeEmotionResponse) ProtoMessage() {}

func (x *AnalyzeEmotionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeEmotionResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeEmotionResponse) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeEmotionResponse) GetSentiment() string {
	if x != nil {
		return x.Sentiment
	}
	return ""
}

func (x *AnalyzeEmotionResponse) GetIntensity() float64 {
	if x != nil {
		return x.Intensity
	}
	return 0
}

type ChooseActionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StateJson     string                 `protobuf:"bytes,1,opt,name=state_json,json=stateJson,proto3" json:"state_json,omitempty"`
	Sentiment     string                 `protobuf:"bytes,2,opt,name=sentiment,proto3" json:"sentiment,omitempty"`
	Intensity     float64                `protobuf:"fixed64,3,opt,name=intensity,proto3" json:"intensity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChooseActionRequest) Reset() {
	*x = ChooseActionRequest{}
	mi := &file_monetize_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChooseActionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChooseActionRequest) ProtoMessage() {}

func (x *ChooseActionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChooseActionRequest.ProtoReflect.Descriptor instead.
func (*ChooseActionRequest) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{2}
}

func (x *ChooseActionRequest) GetStateJson() string {
	if x != nil {
		return x.StateJson
	}
	return ""
}

func (x *ChooseActionRequest) GetSentiment() string {
	if x != nil {
		return x.Sentiment
	}
	return ""
}

func (x *ChooseActionRequest) GetIntensity() float64 {
	if x != nil {
		return x.Intensity
	}
	return 0
}

type ChooseActionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Action        string                 `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChooseActionResponse) Reset() {
	*x = ChooseActionResponse{}
	mi := &file_monetize_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChooseActionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChooseActionResponse) ProtoMessage() {}

func (x *ChooseActionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChooseActionResponse.ProtoReflect.Descriptor instead.
func (*ChooseActionResponse) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{3}
}

func (x *ChooseActionResponse) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

type EstimateRewardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Action        string                 `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	StateJson     string                 `protobuf:"bytes,2,opt,name=state_json,json=stateJson,proto3" json:"state_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EstimateRewardRequest) Reset() {
	*x = EstimateRewardRequest{}
	mi := &file_monetize_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EstimateRewardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimateRewardRequest) ProtoMessage() {}

func (x *EstimateRewardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimateRewardRequest.ProtoReflect.Descriptor instead.
func (*EstimateRewardRequest) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{4}
}

func (x *EstimateRewardRequest) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *EstimateRewardRequest) GetStateJson() string {
	if x != nil {
		return x.StateJson
	}
	return ""
}

type EstimateRewardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reward        float64                `protobuf:"fixed64,1,opt,name=reward,proto3" json:"reward,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EstimateRewardResponse) Reset() {
	*x = EstimateRewardResponse{}
	mi := &file_monetize_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EstimateRewardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimateRewardResponse) ProtoMessage() {}

func (x *EstimateRewardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimateRewardResponse.ProtoReflect.Descriptor instead.
func (*EstimateRewardResponse) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{5}
}

func (x *EstimateRewardResponse) GetReward() float64 {
	if x != nil {
		return x.Reward
	}
	return 0
}

type AssessRiskRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CurrentContext string                 `protobuf:"bytes,1,opt,name=current_context,json=currentContext,proto3" json:"current_context,omitempty"`
	StateJson      string                 `protobuf:"bytes,2,opt,name=state_json,json=stateJson,proto3" json:"state_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AssessRiskRequest) Reset() {
	*x = AssessRiskRequest{}
	mi := &file_monetize_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssessRiskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssessRiskRequest) ProtoMessage() {}

func (x *AssessRiskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssessRiskRequest.ProtoReflect.Descriptor instead.
func (*AssessRiskRequest) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{6}
}

func (x *AssessRiskRequest) GetCurrentContext() string {
	if x != nil {
		return x.CurrentContext
	}
	return ""
}

func (x *AssessRiskRequest) GetStateJson() string {
	if x != nil {
		return x.StateJson
	}
	return ""
}

type AssessRiskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         float64                `protobuf:"fixed64,1,opt,name=score,proto3" json:"score,omitempty"`
	Veto          bool                   `protobuf:"varint,2,opt,name=veto,proto3" json:"veto,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssessRiskResponse) Reset() {
	*x = AssessRiskResponse{}
	mi := &file_monetize_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssessRiskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssessRiskResponse) ProtoMessage() {}

func (x *AssessRiskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_monetize_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssessRiskResponse.ProtoReflect.Descriptor instead.
func (*AssessRiskResponse) Descriptor() ([]byte, []int) {
	return file_monetize_proto_rawDescGZIP(), []int{7}
}

func (x *AssessRiskResponse) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *AssessRiskResponse) GetVeto() bool {
	if x != nil {
		return x.Veto
	}
	return false
}

var File_monetize_proto protoreflect.FileDescriptor

const file_monetize_proto_rawDesc = "" +
	"\n" +
	"\x0emonetize.proto\x12\bmonetize\"8\n" +
	"\x15AnalyzeEmotionRequest\x12\x1f\n" +
	"\vrecord_json\x18\x01 \x01(\tR\n" +
	"recordJson\"T\n" +
	"\x16AnalyzeEmotionResponse\x12\x1c\n" +
	"\tsentiment\x18\x01 \x01(\tR\tsentiment\x12\x1c\n" +
	"\tintensity\x18\x02 \x01(\x01R\tintensity\"p\n" +
	"\x13ChooseActionRequest\x12\x1d\n" +
	"\n" +
	"state_json\x18\x01 \x01(\tR\tstateJson\x12\x1c\n" +
	"\tsentiment\x18\x02 \x01(\tR\tsentiment\x12\x1c\n" +
	"\tintensity\x18\x03 \x01(\x01R\tintensity\".\n" +
	"\x14ChooseActionResponse\x12\x16\n" +
	"\x06action\x18\x01 \x01(\tR\x06action\"N\n" +
	"\x15EstimateRewardRequest\x12\x16\n" +
	"\x06action\x18\x01 \x01(\tR\x06action\x12\x1d\n" +
	"\n" +
	"state_json\x18\x02 \x01(\tR\tstateJson\"0\n" +
	"\x16EstimateRewardResponse\x12\x16\n" +
	"\x06reward\x18\x01 \x01(\x01R\x06reward\"[\n" +
	"\x11AssessRiskRequest\x12'\n" +
	"\x0fcurrent_context\x18\x01 \x01(\tR\x0ecurrentContext\x12\x1d\n" +
	"\n" +
	"state_json\x18\x02 \x01(\tR\tstateJson\">\n" +
	"\x12AssessRiskResponse\x12\x14\n" +
	"\x05score\x18\x01 \x01(\x01R\x05score\x12\x12\n" +
	"\x04veto\x18\x02 \x01(\bR\x04veto2\xd0\x02\n" +
	"\fModelService\x12S\n" +
	"\x0eAnalyzeEmotion\x12\x1f.monetize.AnalyzeEmotionRequest\x1a .monetize.AnalyzeEmotionResponse\x12M\n" +
	"\fChooseAction\x12\x1d.monetize.ChooseActionRequest\x1a\x1e.monetize.ChooseActionResponse\x12S\n" +
	"\x0eEstimateReward\x12\x1f.monetize.EstimateRewardRequest\x1a .monetize.EstimateRewardResponse\x12G\n" +
	"\n" +
	"AssessRisk\x12\x1b.monetize.AssessRiskRequest\x1a\x1c.monetize.AssessRiskResponseBIZGgithub.com/danielpatrickdp/adaptive-monetization/go-engine/gen/monetizeb\x06proto3"

var (
	file_monetize_proto_rawDescOnce sync.Once
	file_monetize_proto_rawDescData []byte
)

func file_monetize_proto_rawDescGZIP() []byte {
	file_monetize_proto_rawDescOnce.Do(func() {
		file_monetize_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_monetize_proto_rawDesc), len(file_monetize_proto_rawDesc)))
	})
	return file_monetize_proto_rawDescData
}

var file_monetize_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_monetize_proto_goTypes = []any{
	(*AnalyzeEmotionRequest)(nil),  // 0: monetize.AnalyzeEmotionRequest
	(*AnalyzeEmotionResponse)(nil), // 1: monetize.AnalyzeEmotionResponse
	(*ChooseActionRequest)(nil),    // 2: monetize.ChooseActionRequest
	(*ChooseActionResponse)(nil),   // 3: monetize.ChooseActionResponse
	(*EstimateRewardRequest)(nil),  // 4: monetize.EstimateRewardRequest
	(*EstimateRewardResponse)(nil), // 5: monetize.EstimateRewardResponse
	(*AssessRiskRequest)(nil),      // 6: monetize.AssessRiskRequest
	(*AssessRiskResponse)(nil),     // 7: monetize.AssessRiskResponse
}
var file_monetize_proto_depIdxs = []int32{
	0, // 0: monetize.ModelService.AnalyzeEmotion:input_type -> monetize.AnalyzeEmotionRequest
	2, // 1: monetize.ModelService.ChooseAction:input_type -> monetize.ChooseActionRequest
	4, // 2: monetize.ModelService.EstimateReward:input_type -> monetize.EstimateRewardRequest
	6, // 3: monetize.ModelService.AssessRisk:input_type -> monetize.AssessRiskRequest
	1, // 4: monetize.ModelService.AnalyzeEmotion:output_type -> monetize.AnalyzeEmotionResponse
	3, // 5: monetize.ModelService.ChooseAction:output_type -> monetize.ChooseActionResponse
	5, // 6: monetize.ModelService.EstimateReward:output_type -> monetize.EstimateRewardResponse
	7, // 7: monetize.ModelService.AssessRisk:output_type -> monetize.AssessRiskResponse
	4, // [4:8] is the sub-list for method output_type
	0, // [0:4] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_monetize_proto_init() }
func file_monetize_proto_init() {
	if File_monetize_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_monetize_proto_rawDesc), len(file_monetize_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_monetize_proto_goTypes,
		DependencyIndexes: file_monetize_proto_depIdxs,
		MessageInfos:      file_monetize_proto_msgTypes,
	}.Build()
	File_monetize_proto = out.File
	file_monetize_proto_goTypes = nil
	file_monetize_proto_depIdxs = nil
}
