package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

func (c *Catalog) registerStandards() {
	c.register(&dispatch.Descriptor{
		Name: "BatchEnableStandards",
		Help: "Enable the given security standards.",
		Params: []dispatch.Param{
			doc("StandardsSubscriptionRequests", `The standards to enable, e.g. [{"StandardsArn":"arn:aws:securityhub:::ruleset/cis-aws-foundations-benchmark/v/1.2.0"}].`, required),
		},
		Select:    "StandardsSubscriptions",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.BatchEnableStandardsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchEnableStandardsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchEnableStandardsWithContext(ctx, in.(*securityhub.BatchEnableStandardsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchDisableStandards",
		Help: "Disable the given standards subscriptions.",
		Params: []dispatch.Param{
			strs("StandardsSubscriptionArns", "The ARNs of the standards subscriptions to disable.", required),
		},
		Select:    "StandardsSubscriptions",
		Mutating:  true,
		Target:    []string{"standards-subscription-arns"},
		NewInput:  func() interface{} { return &securityhub.BatchDisableStandardsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchDisableStandardsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchDisableStandardsWithContext(ctx, in.(*securityhub.BatchDisableStandardsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DescribeStandards",
		Help: "List the available security standards.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "Standards",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.DescribeStandardsInput{} },
		NewOutput: func() interface{} { return &securityhub.DescribeStandardsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DescribeStandardsWithContext(ctx, in.(*securityhub.DescribeStandardsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DescribeStandardsControls",
		Help: "List the controls of an enabled security standard.",
		Params: []dispatch.Param{
			str("StandardsSubscriptionArn", "The ARN of the standards subscription.", required),
			maxResults(),
		},
		Select:    "Controls",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.DescribeStandardsControlsInput{} },
		NewOutput: func() interface{} { return &securityhub.DescribeStandardsControlsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DescribeStandardsControlsWithContext(ctx, in.(*securityhub.DescribeStandardsControlsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetEnabledStandards",
		Help: "List the enabled standards subscriptions.",
		Params: []dispatch.Param{
			strs("StandardsSubscriptionArns", "The ARNs of the standards subscriptions to show."),
			maxResults(),
		},
		Select:    "StandardsSubscriptions",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.GetEnabledStandardsInput{} },
		NewOutput: func() interface{} { return &securityhub.GetEnabledStandardsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetEnabledStandardsWithContext(ctx, in.(*securityhub.GetEnabledStandardsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateStandardsControl",
		Help: "Enable or disable a control of a standard.",
		Params: []dispatch.Param{
			str("StandardsControlArn", "The ARN of the standards control.", required),
			str("ControlStatus", "The new status of the control: ENABLED or DISABLED."),
			str("DisabledReason", "The reason the control is disabled. Required when disabling a control."),
		},
		Mutating:  true,
		Target:    []string{"standards-control-arn"},
		PassThru:  "standards-control-arn",
		NewInput:  func() interface{} { return &securityhub.UpdateStandardsControlInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateStandardsControlOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateStandardsControlWithContext(ctx, in.(*securityhub.UpdateStandardsControlInput))
		}),
	})
}

func (c *Catalog) registerSecurityControls() {
	c.register(&dispatch.Descriptor{
		Name: "BatchGetSecurityControls",
		Help: "Show the details of the given security controls.",
		Params: []dispatch.Param{
			strs("SecurityControlIds", "The identifiers of the security controls, e.g. ACM.1.", required),
		},
		Select:    "SecurityControls",
		NewInput:  func() interface{} { return &securityhub.BatchGetSecurityControlsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchGetSecurityControlsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchGetSecurityControlsWithContext(ctx, in.(*securityhub.BatchGetSecurityControlsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetSecurityControlDefinition",
		Help: "Show the definition of a security control.",
		Params: []dispatch.Param{
			str("SecurityControlId", "The identifier of the security control, e.g. ACM.1.", required),
		},
		Select:    "SecurityControlDefinition",
		NewInput:  func() interface{} { return &securityhub.GetSecurityControlDefinitionInput{} },
		NewOutput: func() interface{} { return &securityhub.GetSecurityControlDefinitionOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetSecurityControlDefinitionWithContext(ctx, in.(*securityhub.GetSecurityControlDefinitionInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateSecurityControl",
		Help: "Update the parameters of a security control.",
		Params: []dispatch.Param{
			str("SecurityControlId", "The identifier of the security control.", required),
			doc("Parameters", `The parameters to update, e.g. {"daysToExpiration":{"ValueType":"CUSTOM","Value":{"Integer":15}}}.`, required),
			str("LastUpdateReason", "The reason for updating the control."),
		},
		Mutating:  true,
		Target:    []string{"security-control-id"},
		PassThru:  "security-control-id",
		NewInput:  func() interface{} { return &securityhub.UpdateSecurityControlInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateSecurityControlOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateSecurityControlWithContext(ctx, in.(*securityhub.UpdateSecurityControlInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListSecurityControlDefinitions",
		Help: "List the security controls that apply to a standard, or all of them.",
		Params: []dispatch.Param{
			str("StandardsArn", "The ARN of the standard to list the controls of."),
			maxResults(),
		},
		Select:    "SecurityControlDefinitions",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListSecurityControlDefinitionsInput{} },
		NewOutput: func() interface{} { return &securityhub.ListSecurityControlDefinitionsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListSecurityControlDefinitionsWithContext(ctx, in.(*securityhub.ListSecurityControlDefinitionsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchGetStandardsControlAssociations",
		Help: "Show whether the given controls are enabled in the given standards.",
		Params: []dispatch.Param{
			doc("StandardsControlAssociationIds", `The control and standard pairs, e.g. [{"SecurityControlId":"ACM.1","StandardsArn":"..."}].`, required),
		},
		Select:    "StandardsControlAssociationDetails",
		NewInput:  func() interface{} { return &securityhub.BatchGetStandardsControlAssociationsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchGetStandardsControlAssociationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchGetStandardsControlAssociationsWithContext(ctx, in.(*securityhub.BatchGetStandardsControlAssociationsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchUpdateStandardsControlAssociations",
		Help: "Enable or disable controls in the given standards.",
		Params: []dispatch.Param{
			doc("StandardsControlAssociationUpdates", `The updates, e.g. [{"SecurityControlId":"ACM.1","StandardsArn":"...","AssociationStatus":"DISABLED","UpdatedReason":"..."}].`, required),
		},
		Select:    "UnprocessedAssociationUpdates",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.BatchUpdateStandardsControlAssociationsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchUpdateStandardsControlAssociationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchUpdateStandardsControlAssociationsWithContext(ctx, in.(*securityhub.BatchUpdateStandardsControlAssociationsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListStandardsControlAssociations",
		Help: "List the standards a security control applies to and whether it is enabled in them.",
		Params: []dispatch.Param{
			str("SecurityControlId", "The identifier of the security control.", required),
			maxResults(),
		},
		Select:    "StandardsControlAssociationSummaries",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListStandardsControlAssociationsInput{} },
		NewOutput: func() interface{} { return &securityhub.ListStandardsControlAssociationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListStandardsControlAssociationsWithContext(ctx, in.(*securityhub.ListStandardsControlAssociationsInput))
		}),
	})
}
