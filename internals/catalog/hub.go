package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

func (c *Catalog) registerHub() {
	c.register(&dispatch.Descriptor{
		Name: "DescribeHub",
		Help: "Show details about the Hub resource in the account.",
		Params: []dispatch.Param{
			str("HubArn", "The ARN of the Hub resource to retrieve."),
		},
		Select:    dispatch.SelectResponse,
		NewInput:  func() interface{} { return &securityhub.DescribeHubInput{} },
		NewOutput: func() interface{} { return &securityhub.DescribeHubOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DescribeHubWithContext(ctx, in.(*securityhub.DescribeHubInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "EnableSecurityHub",
		Help: "Enable Security Hub for the account in the current region.",
		Params: []dispatch.Param{
			tags(),
			boolean("EnableDefaultStandards", "Whether to enable the security standards that Security Hub designates as automatically enabled."),
			str("ControlFindingGenerator", "Whether control findings are generated per standard (STANDARD_CONTROL) or once per control (SECURITY_CONTROL)."),
		},
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.EnableSecurityHubInput{} },
		NewOutput: func() interface{} { return &securityhub.EnableSecurityHubOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.EnableSecurityHubWithContext(ctx, in.(*securityhub.EnableSecurityHubInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name:      "DisableSecurityHub",
		Help:      "Disable Security Hub in the account for the current region.",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.DisableSecurityHubInput{} },
		NewOutput: func() interface{} { return &securityhub.DisableSecurityHubOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DisableSecurityHubWithContext(ctx, in.(*securityhub.DisableSecurityHubInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateSecurityHubConfiguration",
		Help: "Update the configuration of the Hub resource.",
		Params: []dispatch.Param{
			boolean("AutoEnableControls", "Whether to automatically enable new controls when they are added to enabled standards."),
			str("ControlFindingGenerator", "Whether control findings are generated per standard (STANDARD_CONTROL) or once per control (SECURITY_CONTROL)."),
		},
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.UpdateSecurityHubConfigurationInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateSecurityHubConfigurationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateSecurityHubConfigurationWithContext(ctx, in.(*securityhub.UpdateSecurityHubConfigurationInput))
		}),
	})
}

func (c *Catalog) registerOrganization() {
	c.register(&dispatch.Descriptor{
		Name:      "DescribeOrganizationConfiguration",
		Help:      "Show the Organizations-related configuration of the Security Hub administrator account.",
		Select:    dispatch.SelectResponse,
		NewInput:  func() interface{} { return &securityhub.DescribeOrganizationConfigurationInput{} },
		NewOutput: func() interface{} { return &securityhub.DescribeOrganizationConfigurationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DescribeOrganizationConfigurationWithContext(ctx, in.(*securityhub.DescribeOrganizationConfigurationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateOrganizationConfiguration",
		Help: "Update the configuration of the organization's Security Hub administrator account.",
		Params: []dispatch.Param{
			boolean("AutoEnable", "Whether to automatically enable Security Hub in new member accounts.", required),
			str("AutoEnableStandards", "Whether to enable the default standards in new member accounts (DEFAULT or NONE)."),
			str("OrganizationConfiguration.ConfigurationType", "The type of configuration: CENTRAL or LOCAL.", named("configuration-type")),
		},
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.UpdateOrganizationConfigurationInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateOrganizationConfigurationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateOrganizationConfigurationWithContext(ctx, in.(*securityhub.UpdateOrganizationConfigurationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "EnableOrganizationAdminAccount",
		Help: "Designate an account as the Security Hub administrator account for the organization.",
		Params: []dispatch.Param{
			str("AdminAccountId", "The AWS account identifier of the account to designate.", required),
		},
		Mutating:  true,
		Target:    []string{"admin-account-id"},
		PassThru:  "admin-account-id",
		NewInput:  func() interface{} { return &securityhub.EnableOrganizationAdminAccountInput{} },
		NewOutput: func() interface{} { return &securityhub.EnableOrganizationAdminAccountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.EnableOrganizationAdminAccountWithContext(ctx, in.(*securityhub.EnableOrganizationAdminAccountInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DisableOrganizationAdminAccount",
		Help: "Remove the Security Hub administrator account for the organization.",
		Params: []dispatch.Param{
			str("AdminAccountId", "The AWS account identifier of the administrator account.", required),
		},
		Mutating:  true,
		Target:    []string{"admin-account-id"},
		PassThru:  "admin-account-id",
		NewInput:  func() interface{} { return &securityhub.DisableOrganizationAdminAccountInput{} },
		NewOutput: func() interface{} { return &securityhub.DisableOrganizationAdminAccountOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DisableOrganizationAdminAccountWithContext(ctx, in.(*securityhub.DisableOrganizationAdminAccountInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListOrganizationAdminAccounts",
		Help: "List the Security Hub administrator accounts of the organization.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "AdminAccounts",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListOrganizationAdminAccountsInput{} },
		NewOutput: func() interface{} { return &securityhub.ListOrganizationAdminAccountsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListOrganizationAdminAccountsWithContext(ctx, in.(*securityhub.ListOrganizationAdminAccountsInput))
		}),
	})
}
