// +build !production

package fakes

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
)

// SecurityHub is a mock of the securityhubiface.SecurityHubAPI interface.
// Calling a method that has no Func set panics.
type SecurityHub struct {
	securityhubiface.SecurityHubAPI

	AcceptAdministratorInvitationFunc func(*securityhub.AcceptAdministratorInvitationInput) (*securityhub.AcceptAdministratorInvitationOutput, error)
	BatchUpdateFindingsFunc           func(*securityhub.BatchUpdateFindingsInput) (*securityhub.BatchUpdateFindingsOutput, error)
	DescribeHubFunc                   func(*securityhub.DescribeHubInput) (*securityhub.DescribeHubOutput, error)
	GetFindingsFunc                   func(*securityhub.GetFindingsInput) (*securityhub.GetFindingsOutput, error)
	InviteMembersFunc                 func(*securityhub.InviteMembersInput) (*securityhub.InviteMembersOutput, error)
	ListMembersFunc                   func(*securityhub.ListMembersInput) (*securityhub.ListMembersOutput, error)
	TagResourceFunc                   func(*securityhub.TagResourceInput) (*securityhub.TagResourceOutput, error)

	StartConfigurationPolicyAssociationFunc func(*securityhub.StartConfigurationPolicyAssociationInput) (*securityhub.StartConfigurationPolicyAssociationOutput, error)
}

// AcceptAdministratorInvitationWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) AcceptAdministratorInvitationWithContext(_ aws.Context, in *securityhub.AcceptAdministratorInvitationInput, _ ...request.Option) (*securityhub.AcceptAdministratorInvitationOutput, error) {
	return s.AcceptAdministratorInvitationFunc(in)
}

// BatchUpdateFindingsWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) BatchUpdateFindingsWithContext(_ aws.Context, in *securityhub.BatchUpdateFindingsInput, _ ...request.Option) (*securityhub.BatchUpdateFindingsOutput, error) {
	return s.BatchUpdateFindingsFunc(in)
}

// DescribeHubWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) DescribeHubWithContext(_ aws.Context, in *securityhub.DescribeHubInput, _ ...request.Option) (*securityhub.DescribeHubOutput, error) {
	return s.DescribeHubFunc(in)
}

// GetFindingsWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) GetFindingsWithContext(_ aws.Context, in *securityhub.GetFindingsInput, _ ...request.Option) (*securityhub.GetFindingsOutput, error) {
	return s.GetFindingsFunc(in)
}

// InviteMembersWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) InviteMembersWithContext(_ aws.Context, in *securityhub.InviteMembersInput, _ ...request.Option) (*securityhub.InviteMembersOutput, error) {
	return s.InviteMembersFunc(in)
}

// ListMembersWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) ListMembersWithContext(_ aws.Context, in *securityhub.ListMembersInput, _ ...request.Option) (*securityhub.ListMembersOutput, error) {
	return s.ListMembersFunc(in)
}

// TagResourceWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) TagResourceWithContext(_ aws.Context, in *securityhub.TagResourceInput, _ ...request.Option) (*securityhub.TagResourceOutput, error) {
	return s.TagResourceFunc(in)
}

// StartConfigurationPolicyAssociationWithContext implements the SecurityHubAPI interface.
func (s *SecurityHub) StartConfigurationPolicyAssociationWithContext(_ aws.Context, in *securityhub.StartConfigurationPolicyAssociationInput, _ ...request.Option) (*securityhub.StartConfigurationPolicyAssociationOutput, error) {
	return s.StartConfigurationPolicyAssociationFunc(in)
}
