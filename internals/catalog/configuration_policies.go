package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

const (
	policyHelp = `The configuration policy, e.g. {"SecurityHub":{"ServiceEnabled":true,"EnabledStandardIdentifiers":["arn:aws:securityhub:eu-west-1::standards/aws-foundational-security-best-practices/v/1.0.0"],"SecurityControlsConfiguration":{"DisabledSecurityControlIdentifiers":[]}}}.`
	targetHelp = `The account, organizational unit or root, e.g. {"AccountId":"111122223333"} or {"OrganizationalUnitId":"ou-ab12-cd34ef56"}.`
)

func policyIdentifier(help string) dispatch.Param {
	return str("ConfigurationPolicyIdentifier", help, alias("policy-id"), required)
}

func (c *Catalog) registerConfigurationPolicies() {
	c.register(&dispatch.Descriptor{
		Name: "CreateConfigurationPolicy",
		Help: "Create a configuration policy for central configuration of an organization.",
		Params: []dispatch.Param{
			str("Name", "The name of the configuration policy.", required),
			str("Description", "The description of the configuration policy."),
			doc("ConfigurationPolicy", policyHelp, required),
			tags(),
		},
		Select:    dispatch.SelectResponse,
		Mutating:  true,
		Target:    []string{"name"},
		NewInput:  func() interface{} { return &securityhub.CreateConfigurationPolicyInput{} },
		NewOutput: func() interface{} { return &securityhub.CreateConfigurationPolicyOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.CreateConfigurationPolicyWithContext(ctx, in.(*securityhub.CreateConfigurationPolicyInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetConfigurationPolicy",
		Help: "Show a configuration policy.",
		Params: []dispatch.Param{
			str("Identifier", "The ARN or ID of the configuration policy.", alias("policy-id"), required),
		},
		Select:    dispatch.SelectResponse,
		NewInput:  func() interface{} { return &securityhub.GetConfigurationPolicyInput{} },
		NewOutput: func() interface{} { return &securityhub.GetConfigurationPolicyOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetConfigurationPolicyWithContext(ctx, in.(*securityhub.GetConfigurationPolicyInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateConfigurationPolicy",
		Help: "Update a configuration policy.",
		Params: []dispatch.Param{
			str("Identifier", "The ARN or ID of the configuration policy to update.", alias("policy-id"), required),
			str("Name", "The new name of the configuration policy."),
			str("Description", "The new description of the configuration policy."),
			str("UpdatedReason", "The reason for updating the configuration policy."),
			doc("ConfigurationPolicy", policyHelp),
		},
		Select:    dispatch.SelectResponse,
		Mutating:  true,
		Target:    []string{"identifier"},
		PassThru:  "identifier",
		NewInput:  func() interface{} { return &securityhub.UpdateConfigurationPolicyInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateConfigurationPolicyOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateConfigurationPolicyWithContext(ctx, in.(*securityhub.UpdateConfigurationPolicyInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DeleteConfigurationPolicy",
		Help: "Delete a configuration policy. The policy must not be associated with any account, organizational unit or root.",
		Params: []dispatch.Param{
			str("Identifier", "The ARN or ID of the configuration policy to delete.", alias("policy-id"), required),
		},
		Mutating:  true,
		Target:    []string{"identifier"},
		PassThru:  "identifier",
		NewInput:  func() interface{} { return &securityhub.DeleteConfigurationPolicyInput{} },
		NewOutput: func() interface{} { return &securityhub.DeleteConfigurationPolicyOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeleteConfigurationPolicyWithContext(ctx, in.(*securityhub.DeleteConfigurationPolicyInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListConfigurationPolicies",
		Help: "List the configuration policies of the organization.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "ConfigurationPolicySummaries",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListConfigurationPoliciesInput{} },
		NewOutput: func() interface{} { return &securityhub.ListConfigurationPoliciesOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListConfigurationPoliciesWithContext(ctx, in.(*securityhub.ListConfigurationPoliciesInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "StartConfigurationPolicyAssociation",
		Help: "Associate a configuration policy, or self-managed configuration, with an account, organizational unit or root.",
		Params: []dispatch.Param{
			policyIdentifier(`The ARN or ID of the configuration policy, or SELF_MANAGED_SECURITY_HUB.`),
			doc("Target", targetHelp, required),
		},
		Select:    dispatch.SelectResponse,
		Mutating:  true,
		Target:    []string{"configuration-policy-identifier", "target"},
		PassThru:  "configuration-policy-identifier",
		NewInput:  func() interface{} { return &securityhub.StartConfigurationPolicyAssociationInput{} },
		NewOutput: func() interface{} { return &securityhub.StartConfigurationPolicyAssociationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.StartConfigurationPolicyAssociationWithContext(ctx, in.(*securityhub.StartConfigurationPolicyAssociationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "StartConfigurationPolicyDisassociation",
		Help: "Disassociate a configuration policy from an account, organizational unit or root.",
		Params: []dispatch.Param{
			policyIdentifier(`The ARN or ID of the configuration policy, or SELF_MANAGED_SECURITY_HUB.`),
			doc("Target", targetHelp),
		},
		Mutating:  true,
		Target:    []string{"configuration-policy-identifier", "target"},
		PassThru:  "configuration-policy-identifier",
		NewInput:  func() interface{} { return &securityhub.StartConfigurationPolicyDisassociationInput{} },
		NewOutput: func() interface{} { return &securityhub.StartConfigurationPolicyDisassociationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.StartConfigurationPolicyDisassociationWithContext(ctx, in.(*securityhub.StartConfigurationPolicyDisassociationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetConfigurationPolicyAssociation",
		Help: "Show the configuration policy associated with an account, organizational unit or root.",
		Params: []dispatch.Param{
			doc("Target", targetHelp, required),
		},
		Select:    dispatch.SelectResponse,
		NewInput:  func() interface{} { return &securityhub.GetConfigurationPolicyAssociationInput{} },
		NewOutput: func() interface{} { return &securityhub.GetConfigurationPolicyAssociationOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetConfigurationPolicyAssociationWithContext(ctx, in.(*securityhub.GetConfigurationPolicyAssociationInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchGetConfigurationPolicyAssociations",
		Help: "Show the configuration policy associations of the given targets.",
		Params: []dispatch.Param{
			doc("ConfigurationPolicyAssociationIdentifiers", `The targets, e.g. [{"Target":{"AccountId":"111122223333"}}].`, required),
		},
		Select:    "ConfigurationPolicyAssociations",
		NewInput:  func() interface{} { return &securityhub.BatchGetConfigurationPolicyAssociationsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchGetConfigurationPolicyAssociationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchGetConfigurationPolicyAssociationsWithContext(ctx, in.(*securityhub.BatchGetConfigurationPolicyAssociationsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListConfigurationPolicyAssociations",
		Help: "List the configuration policy associations of the organization.",
		Params: []dispatch.Param{
			doc("Filters", `Filters on the associations, e.g. {"AssociationType":"APPLIED","AssociationStatus":"SUCCESS"}.`),
			maxResults(),
		},
		Select:    "ConfigurationPolicyAssociationSummaries",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListConfigurationPolicyAssociationsInput{} },
		NewOutput: func() interface{} { return &securityhub.ListConfigurationPolicyAssociationsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListConfigurationPolicyAssociationsWithContext(ctx, in.(*securityhub.ListConfigurationPolicyAssociationsInput))
		}),
	})
}
