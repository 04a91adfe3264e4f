package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

func (c *Catalog) registerActionTargets() {
	c.register(&dispatch.Descriptor{
		Name: "CreateActionTarget",
		Help: "Create a custom action target that sends findings to Amazon EventBridge.",
		Params: []dispatch.Param{
			str("Name", "The name of the custom action target.", required),
			str("Description", "The description of the custom action target.", required),
			str("Id", "The identifier of the custom action target.", named("action-id"), required),
		},
		Select:    "ActionTargetArn",
		Mutating:  true,
		Target:    []string{"action-id"},
		NewInput:  func() interface{} { return &securityhub.CreateActionTargetInput{} },
		NewOutput: func() interface{} { return &securityhub.CreateActionTargetOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.CreateActionTargetWithContext(ctx, in.(*securityhub.CreateActionTargetInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DeleteActionTarget",
		Help: "Delete a custom action target.",
		Params: []dispatch.Param{
			str("ActionTargetArn", "The ARN of the custom action target to delete.", required),
		},
		Select:    "ActionTargetArn",
		Mutating:  true,
		Target:    []string{"action-target-arn"},
		NewInput:  func() interface{} { return &securityhub.DeleteActionTargetInput{} },
		NewOutput: func() interface{} { return &securityhub.DeleteActionTargetOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeleteActionTargetWithContext(ctx, in.(*securityhub.DeleteActionTargetInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DescribeActionTargets",
		Help: "List the given custom action targets, or all of them when none are given.",
		Params: []dispatch.Param{
			strs("ActionTargetArns", "The ARNs of the custom action targets to show."),
			maxResults(),
		},
		Select:    "ActionTargets",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.DescribeActionTargetsInput{} },
		NewOutput: func() interface{} { return &securityhub.DescribeActionTargetsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DescribeActionTargetsWithContext(ctx, in.(*securityhub.DescribeActionTargetsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateActionTarget",
		Help: "Update the name or description of a custom action target.",
		Params: []dispatch.Param{
			str("ActionTargetArn", "The ARN of the custom action target to update.", required),
			str("Name", "The new name of the custom action target."),
			str("Description", "The new description of the custom action target."),
		},
		Mutating:  true,
		Target:    []string{"action-target-arn"},
		PassThru:  "action-target-arn",
		NewInput:  func() interface{} { return &securityhub.UpdateActionTargetInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateActionTargetOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateActionTargetWithContext(ctx, in.(*securityhub.UpdateActionTargetInput))
		}),
	})
}
