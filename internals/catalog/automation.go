package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

func automationRulesArns(help string) dispatch.Param {
	return strs("AutomationRulesArns", help, required, alias("rule-arns"))
}

func (c *Catalog) registerAutomationRules() {
	c.register(&dispatch.Descriptor{
		Name: "CreateAutomationRule",
		Help: "Create an automation rule that updates findings matching its criteria.",
		Params: []dispatch.Param{
			str("RuleName", "The name of the rule.", required),
			str("Description", "The description of the rule.", required),
			integer("RuleOrder", "The order in which the rule is evaluated, lower first.", required),
			doc("Criteria", "The finding attributes a finding must match for the rule to apply.", required),
			doc("Actions", `The actions to take on matching findings, e.g. [{"Type":"FINDING_FIELDS_UPDATE","FindingFieldsUpdate":{"Workflow":{"Status":"SUPPRESSED"}}}].`, required),
			str("RuleStatus", "Whether the rule is ENABLED or DISABLED."),
			boolean("IsTerminal", "Whether to stop evaluating other rules after this one applied."),
			tags(),
		},
		Select:    "RuleArn",
		Mutating:  true,
		Target:    []string{"rule-name"},
		NewInput:  func() interface{} { return &securityhub.CreateAutomationRuleInput{} },
		NewOutput: func() interface{} { return &securityhub.CreateAutomationRuleOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.CreateAutomationRuleWithContext(ctx, in.(*securityhub.CreateAutomationRuleInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchDeleteAutomationRules",
		Help: "Delete the given automation rules.",
		Params: []dispatch.Param{
			automationRulesArns("The ARNs of the rules to delete."),
		},
		Select:    "UnprocessedAutomationRules",
		Mutating:  true,
		Target:    []string{"automation-rules-arns"},
		NewInput:  func() interface{} { return &securityhub.BatchDeleteAutomationRulesInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchDeleteAutomationRulesOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchDeleteAutomationRulesWithContext(ctx, in.(*securityhub.BatchDeleteAutomationRulesInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchGetAutomationRules",
		Help: "Show the given automation rules.",
		Params: []dispatch.Param{
			automationRulesArns("The ARNs of the rules to show."),
		},
		Select:    "Rules",
		NewInput:  func() interface{} { return &securityhub.BatchGetAutomationRulesInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchGetAutomationRulesOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchGetAutomationRulesWithContext(ctx, in.(*securityhub.BatchGetAutomationRulesInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchUpdateAutomationRules",
		Help: "Update the given automation rules.",
		Params: []dispatch.Param{
			doc("UpdateAutomationRulesRequestItems", `The rules to update, e.g. [{"RuleArn":"...","RuleStatus":"DISABLED"}].`, required),
		},
		Select:    "UnprocessedAutomationRules",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.BatchUpdateAutomationRulesInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchUpdateAutomationRulesOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchUpdateAutomationRulesWithContext(ctx, in.(*securityhub.BatchUpdateAutomationRulesInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListAutomationRules",
		Help: "List the automation rules of the administrator account.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "AutomationRulesMetadata",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListAutomationRulesInput{} },
		NewOutput: func() interface{} { return &securityhub.ListAutomationRulesOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListAutomationRulesWithContext(ctx, in.(*securityhub.ListAutomationRulesInput))
		}),
	})
}

func (c *Catalog) registerTags() {
	c.register(&dispatch.Descriptor{
		Name: "ListTagsForResource",
		Help: "Show the tags of a resource.",
		Params: []dispatch.Param{
			str("ResourceArn", "The ARN of the resource.", required),
		},
		Select:    "Tags",
		NewInput:  func() interface{} { return &securityhub.ListTagsForResourceInput{} },
		NewOutput: func() interface{} { return &securityhub.ListTagsForResourceOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListTagsForResourceWithContext(ctx, in.(*securityhub.ListTagsForResourceInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "TagResource",
		Help: "Add tags to a resource.",
		Params: []dispatch.Param{
			str("ResourceArn", "The ARN of the resource to tag.", required),
			strmap("Tags", "The tags to add, as key=value pairs.", required),
		},
		Mutating:  true,
		Target:    []string{"resource-arn"},
		PassThru:  "resource-arn",
		NewInput:  func() interface{} { return &securityhub.TagResourceInput{} },
		NewOutput: func() interface{} { return &securityhub.TagResourceOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.TagResourceWithContext(ctx, in.(*securityhub.TagResourceInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UntagResource",
		Help: "Remove tags from a resource.",
		Params: []dispatch.Param{
			str("ResourceArn", "The ARN of the resource to remove the tags from.", required),
			strs("TagKeys", "The keys of the tags to remove.", required),
		},
		Mutating:  true,
		Target:    []string{"resource-arn"},
		PassThru:  "resource-arn",
		NewInput:  func() interface{} { return &securityhub.UntagResourceInput{} },
		NewOutput: func() interface{} { return &securityhub.UntagResourceOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UntagResourceWithContext(ctx, in.(*securityhub.UntagResourceInput))
		}),
	})
}
