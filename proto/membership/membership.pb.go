// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: membership/membership.proto

package membership

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

type CreateGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	LastAdminRule string                 `protobuf:"bytes,2,opt,name=last_admin_rule,json=lastAdminRule,proto3" json:"last_admin_rule,omitempty"` // "transfer" or "delete"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateGroupRequest) Reset() {
	*x = CreateGroupRequest{}
	mi := &file_membership_membership_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateGroupRequest) ProtoMessage() {}

func (x *CreateGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateGroupRequest.ProtoReflect.Descriptor instead.
func (*CreateGroupRequest) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{0}
}

func (x *CreateGroupRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *CreateGroupRequest) GetLastAdminRule() string {
	if x != nil {
		return x.LastAdminRule
	}
	return ""
}

type GroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupRequest) Reset() {
	*x = GroupRequest{}
	mi := &file_membership_membership_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupRequest) ProtoMessage() {}

func (x *GroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupRequest.ProtoReflect.Descriptor instead.
func (*GroupRequest) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{1}
}

func (x *GroupRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

type MemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MemberRequest) Reset() {
	*x = MemberRequest{}
	mi := &file_membership_membership_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberRequest) ProtoMessage() {}

func (x *MemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberRequest.ProtoReflect.Descriptor instead.
func (*MemberRequest) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{2}
}

func (x *MemberRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *MemberRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type BanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scope         string                 `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"` // "global" or "group"
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	GroupId       string                 `protobuf:"bytes,3,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"` // empty for global bans
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BanRequest) Reset() {
	*x = BanRequest{}
	mi := &file_membership_membership_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BanRequest) ProtoMessage() {}

func (x *BanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BanRequest.ProtoReflect.Descriptor instead.
func (*BanRequest) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{3}
}

func (x *BanRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *BanRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *BanRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *BanRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type GroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupResponse) Reset() {
	*x = GroupResponse{}
	mi := &file_membership_membership_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupResponse) ProtoMessage() {}

func (x *GroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupResponse.ProtoReflect.Descriptor instead.
func (*GroupResponse) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{4}
}

type LeaveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	NewAdmin      string                 `protobuf:"bytes,2,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"` // set when the admin role was transferred
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaveResponse) Reset() {
	*x = LeaveResponse{}
	mi := &file_membership_membership_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaveResponse) ProtoMessage() {}

func (x *LeaveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaveResponse.ProtoReflect.Descriptor instead.
func (*LeaveResponse) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{5}
}

func (x *LeaveResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *LeaveResponse) GetNewAdmin() string {
	if x != nil {
		return x.NewAdmin
	}
	return ""
}

type MembersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AdminId       string                 `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Members       []string               `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	Pending       []string               `protobuf:"bytes,3,rep,name=pending,proto3" json:"pending,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MembersResponse) Reset() {
	*x = MembersResponse{}
	mi := &file_membership_membership_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MembersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MembersResponse) ProtoMessage() {}

func (x *MembersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_membership_membership_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MembersResponse.ProtoReflect.Descriptor instead.
func (*MembersResponse) Descriptor() ([]byte, []int) {
	return file_membership_membership_proto_rawDescGZIP(), []int{6}
}

func (x *MembersResponse) GetAdminId() string {
	if x != nil {
		return x.AdminId
	}
	return ""
}

func (x *MembersResponse) GetMembers() []string {
	if x != nil {
		return x.Members
	}
	return nil
}

func (x *MembersResponse) GetPending() []string {
	if x != nil {
		return x.Pending
	}
	return nil
}

var File_membership_membership_proto protoreflect.FileDescriptor

const file_membership_membership_proto_rawDesc = "" +
	"\n" +
	"\x1bmembership/membership.proto\x12\n" +
	"membership\"W\n" +
	"\x12CreateGroupRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12&\n" +
	"\x0flast_admin_rule\x18\x02 \x01(\tR\rlastAdminRule\")\n" +
	"\fGroupRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\"C\n" +
	"\rMemberRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"n\n" +
	"\n" +
	"BanRequest\x12\x14\n" +
	"\x05scope\x18\x01 \x01(\tR\x05scope\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x19\n" +
	"\bgroup_id\x18\x03 \x01(\tR\agroupId\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"\x0f\n" +
	"\rGroupResponse\"F\n" +
	"\rLeaveResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\x12\x1b\n" +
	"\tnew_admin\x18\x02 \x01(\tR\bnewAdmin\"`\n" +
	"\x0fMembersResponse\x12\x19\n" +
	"\badmin_id\x18\x01 \x01(\tR\aadminId\x12\x18\n" +
	"\amembers\x18\x02 \x03(\tR\amembers\x12\x18\n" +
	"\apending\x18\x03 \x03(\tR\apending2\xfc\x04\n" +
	"\x11MembershipService\x12H\n" +
	"\vCreateGroup\x12\x1e.membership.CreateGroupRequest\x1a\x19.membership.GroupResponse\x12B\n" +
	"\vRequestJoin\x12\x18.membership.GroupRequest\x1a\x19.membership.GroupResponse\x12C\n" +
	"\vApproveJoin\x12\x19.membership.MemberRequest\x1a\x19.membership.GroupResponse\x12B\n" +
	"\n" +
	"RejectJoin\x12\x19.membership.MemberRequest\x1a\x19.membership.GroupResponse\x12A\n" +
	"\n" +
	"LeaveGroup\x12\x18.membership.GroupRequest\x1a\x19.membership.LeaveResponse\x12E\n" +
	"\rTransferAdmin\x12\x19.membership.MemberRequest\x1a\x19.membership.GroupResponse\x12B\n" +
	"\vDeleteGroup\x12\x18.membership.GroupRequest\x1a\x19.membership.GroupResponse\x12<\n" +
	"\aBanUser\x12\x16.membership.BanRequest\x1a\x19.membership.GroupResponse\x12D\n" +
	"\vListMembers\x12\x18.membership.GroupRequest\x1a\x1b.membership.MembersResponseB\x1dZ\x1bchat-relay/proto/membershipb\x06proto3"

var (
	file_membership_membership_proto_rawDescOnce sync.Once
	file_membership_membership_proto_rawDescData []byte
)

func file_membership_membership_proto_rawDescGZIP() []byte {
	file_membership_membership_proto_rawDescOnce.Do(func() {
		file_membership_membership_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_membership_membership_proto_rawDesc), len(file_membership_membership_proto_rawDesc)))
	})
	return file_membership_membership_proto_rawDescData
}

var file_membership_membership_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_membership_membership_proto_goTypes = []any{
	(*CreateGroupRequest)(nil), // 0: membership.CreateGroupRequest
	(*GroupRequest)(nil),       // 1: membership.GroupRequest
	(*MemberRequest)(nil),      // 2: membership.MemberRequest
	(*BanRequest)(nil),         // 3: membership.BanRequest
	(*GroupResponse)(nil),      // 4: membership.GroupResponse
	(*LeaveResponse)(nil),      // 5: membership.LeaveResponse
	(*MembersResponse)(nil),    // 6: membership.MembersResponse
}
var file_membership_membership_proto_depIdxs = []int32{
	0, // 0: membership.MembershipService.CreateGroup:input_type -> membership.CreateGroupRequest
	1, // 1: membership.MembershipService.RequestJoin:input_type -> membership.GroupRequest
	2, // 2: membership.MembershipService.ApproveJoin:input_type -> membership.MemberRequest
	2, // 3: membership.MembershipService.RejectJoin:input_type -> membership.MemberRequest
	1, // 4: membership.MembershipService.LeaveGroup:input_type -> membership.GroupRequest
	2, // 5: membership.MembershipService.TransferAdmin:input_type -> membership.MemberRequest
	1, // 6: membership.MembershipService.DeleteGroup:input_type -> membership.GroupRequest
	3, // 7: membership.MembershipService.BanUser:input_type -> membership.BanRequest
	1, // 8: membership.MembershipService.ListMembers:input_type -> membership.GroupRequest
	4, // 9: membership.MembershipService.CreateGroup:output_type -> membership.GroupResponse
	4, // 10: membership.MembershipService.RequestJoin:output_type -> membership.GroupResponse
	4, // 11: membership.MembershipService.ApproveJoin:output_type -> membership.GroupResponse
	4, // 12: membership.MembershipService.RejectJoin:output_type -> membership.GroupResponse
	5, // 13: membership.MembershipService.LeaveGroup:output_type -> membership.LeaveResponse
	4, // 14: membership.MembershipService.TransferAdmin:output_type -> membership.GroupResponse
	4, // 15: membership.MembershipService.DeleteGroup:output_type -> membership.GroupResponse
	4, // 16: membership.MembershipService.BanUser:output_type -> membership.GroupResponse
	6, // 17: membership.MembershipService.ListMembers:output_type -> membership.MembersResponse
	9, // [9:18] is the sub-list for method output_type
	0, // [0:9] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_membership_membership_proto_init() }
func file_membership_membership_proto_init() {
	if File_membership_membership_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_membership_membership_proto_rawDesc), len(file_membership_membership_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_membership_membership_proto_goTypes,
		DependencyIndexes: file_membership_membership_proto_depIdxs,
		MessageInfos:      file_membership_membership_proto_msgTypes,
	}.Build()
	File_membership_membership_proto = out.File
	file_membership_membership_proto_goTypes = nil
	file_membership_membership_proto_depIdxs = nil
}
