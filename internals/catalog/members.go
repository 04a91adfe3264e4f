package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

func accountIDs(help string) dispatch.Param {
	return strs("AccountIds", help, required, alias("account-id"))
}

func (c *Catalog) registerMembers() {
	c.register(&dispatch.Descriptor{
		Name: "AcceptAdministratorInvitation",
		Help: "Accept an invitation to become a member account of a Security Hub administrator account.",
		Params: []dispatch.Param{
			str("AdministratorId", "The account ID of the Security Hub administrator account that sent the invitation.", required),
			str("InvitationId", "The identifier of the invitation to accept.", required),
		},
		Mutating:  true,
		Target:    []string{"administrator-id"},
		PassThru:  "invitation-id",
		NewInput:  func() interface{} { return &securityhub.AcceptAdministratorInvitationInput{} },
		NewOutput: func() interface{} { return &securityhub.AcceptAdministratorInvitationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.AcceptAdministratorInvitationWithContext(ctx, in.(*securityhub.AcceptAdministratorInvitationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "AcceptInvitation",
		Help: "Accept an invitation from a master account. Replaced by accept-administrator-invitation.",
		Params: []dispatch.Param{
			str("MasterId", "The account ID of the Security Hub master account that sent the invitation.", required),
			str("InvitationId", "The identifier of the invitation to accept.", required),
		},
		Mutating:  true,
		Target:    []string{"master-id"},
		PassThru:  "invitation-id",
		NewInput:  func() interface{} { return &securityhub.AcceptInvitationInput{} },
		NewOutput: func() interface{} { return &securityhub.AcceptInvitationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.AcceptInvitationWithContext(ctx, in.(*securityhub.AcceptInvitationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name:      "GetAdministratorAccount",
		Help:      "Show the Security Hub administrator account of the current member account.",
		Select:    "Administrator",
		NewInput:  func() interface{} { return &securityhub.GetAdministratorAccountInput{} },
		NewOutput: func() interface{} { return &securityhub.GetAdministratorAccountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetAdministratorAccountWithContext(ctx, in.(*securityhub.GetAdministratorAccountInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name:      "GetMasterAccount",
		Help:      "Show the master account of the current member account. Replaced by get-administrator-account.",
		Select:    "Master",
		NewInput:  func() interface{} { return &securityhub.GetMasterAccountInput{} },
		NewOutput: func() interface{} { return &securityhub.GetMasterAccountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetMasterAccountWithContext(ctx, in.(*securityhub.GetMasterAccountInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name:      "DisassociateFromAdministratorAccount",
		Help:      "Disassociate the current member account from its Security Hub administrator account.",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.DisassociateFromAdministratorAccountInput{} },
		NewOutput: func() interface{} { return &securityhub.DisassociateFromAdministratorAccountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DisassociateFromAdministratorAccountWithContext(ctx, in.(*securityhub.DisassociateFromAdministratorAccountInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name:      "DisassociateFromMasterAccount",
		Help:      "Disassociate the current member account from its master account. Replaced by disassociate-from-administrator-account.",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.DisassociateFromMasterAccountInput{} },
		NewOutput: func() interface{} { return &securityhub.DisassociateFromMasterAccountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DisassociateFromMasterAccountWithContext(ctx, in.(*securityhub.DisassociateFromMasterAccountInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "CreateMembers",
		Help: "Create member associations between the administrator account and the given accounts.",
		Params: []dispatch.Param{
			doc("AccountDetails", `The accounts to associate, e.g. [{"AccountId":"111122223333","Email":"security@example.com"}].`, required),
		},
		Select:    "UnprocessedAccounts",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.CreateMembersInput{} },
		NewOutput: func() interface{} { return &securityhub.CreateMembersOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.CreateMembersWithContext(ctx, in.(*securityhub.CreateMembersInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetMembers",
		Help: "Show the details of the given member accounts.",
		Params: []dispatch.Param{
			accountIDs("The account IDs of the member accounts to show."),
		},
		Select:    "Members",
		NewInput:  func() interface{} { return &securityhub.GetMembersInput{} },
		NewOutput: func() interface{} { return &securityhub.GetMembersOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetMembersWithContext(ctx, in.(*securityhub.GetMembersInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListMembers",
		Help: "List the member accounts associated with the administrator account.",
		Params: []dispatch.Param{
			boolean("OnlyAssociated", "Only list member accounts whose relationship status is ENABLED."),
			maxResults(),
		},
		Select:    "Members",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListMembersInput{} },
		NewOutput: func() interface{} { return &securityhub.ListMembersOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListMembersWithContext(ctx, in.(*securityhub.ListMembersInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "InviteMembers",
		Help: "Invite the given accounts to become member accounts.",
		Params: []dispatch.Param{
			accountIDs("The account IDs of the accounts to invite."),
		},
		Select:    "UnprocessedAccounts",
		Mutating:  true,
		Target:    []string{"account-ids"},
		NewInput:  func() interface{} { return &securityhub.InviteMembersInput{} },
		NewOutput: func() interface{} { return &securityhub.InviteMembersOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.InviteMembersWithContext(ctx, in.(*securityhub.InviteMembersInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DeleteMembers",
		Help: "Delete the given member accounts.",
		Params: []dispatch.Param{
			accountIDs("The account IDs of the member accounts to delete."),
		},
		Select:    "UnprocessedAccounts",
		Mutating:  true,
		Target:    []string{"account-ids"},
		NewInput:  func() interface{} { return &securityhub.DeleteMembersInput{} },
		NewOutput: func() interface{} { return &securityhub.DeleteMembersOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeleteMembersWithContext(ctx, in.(*securityhub.DeleteMembersInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DisassociateMembers",
		Help: "Disassociate the given member accounts from the administrator account.",
		Params: []dispatch.Param{
			accountIDs("The account IDs of the member accounts to disassociate."),
		},
		Mutating:  true,
		Target:    []string{"account-ids"},
		PassThru:  "account-ids",
		NewInput:  func() interface{} { return &securityhub.DisassociateMembersInput{} },
		NewOutput: func() interface{} { return &securityhub.DisassociateMembersOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DisassociateMembersWithContext(ctx, in.(*securityhub.DisassociateMembersInput))
		}),
	})
}

func (c *Catalog) registerInvitations() {
	c.register(&dispatch.Descriptor{
		Name: "DeclineInvitations",
		Help: "Decline the invitations sent by the given accounts.",
		Params: []dispatch.Param{
			accountIDs("The account IDs of the accounts whose invitations to decline."),
		},
		Select:    "UnprocessedAccounts",
		Mutating:  true,
		Target:    []string{"account-ids"},
		NewInput:  func() interface{} { return &securityhub.DeclineInvitationsInput{} },
		NewOutput: func() interface{} { return &securityhub.DeclineInvitationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeclineInvitationsWithContext(ctx, in.(*securityhub.DeclineInvitationsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DeleteInvitations",
		Help: "Delete the invitations sent by the given accounts.",
		Params: []dispatch.Param{
			accountIDs("The account IDs of the accounts whose invitations to delete."),
		},
		Select:    "UnprocessedAccounts",
		Mutating:  true,
		Target:    []string{"account-ids"},
		NewInput:  func() interface{} { return &securityhub.DeleteInvitationsInput{} },
		NewOutput: func() interface{} { return &securityhub.DeleteInvitationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeleteInvitationsWithContext(ctx, in.(*securityhub.DeleteInvitationsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListInvitations",
		Help: "List the invitations sent to the current account.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "Invitations",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListInvitationsInput{} },
		NewOutput: func() interface{} { return &securityhub.ListInvitationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListInvitationsWithContext(ctx, in.(*securityhub.ListInvitationsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name:      "GetInvitationsCount",
		Help:      "Show the number of invitations sent to the current account, not counting the accepted one.",
		Select:    "InvitationsCount",
		NewInput:  func() interface{} { return &securityhub.GetInvitationsCountInput{} },
		NewOutput: func() interface{} { return &securityhub.GetInvitationsCountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetInvitationsCountWithContext(ctx, in.(*securityhub.GetInvitationsCountInput))
		}),
	})
}
