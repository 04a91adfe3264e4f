package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

func (c *Catalog) registerProducts() {
	c.register(&dispatch.Descriptor{
		Name: "DescribeProducts",
		Help: "List the products that are integrated with Security Hub.",
		Params: []dispatch.Param{
			str("ProductArn", "The ARN of the integration to show."),
			maxResults(),
		},
		Select:    "Products",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.DescribeProductsInput{} },
		NewOutput: func() interface{} { return &securityhub.DescribeProductsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DescribeProductsWithContext(ctx, in.(*securityhub.DescribeProductsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "EnableImportFindingsForProduct",
		Help: "Enable the integration of a partner product with Security Hub.",
		Params: []dispatch.Param{
			str("ProductArn", "The ARN of the product to enable the integration for.", required),
		},
		Select:    "ProductSubscriptionArn",
		Mutating:  true,
		Target:    []string{"product-arn"},
		NewInput:  func() interface{} { return &securityhub.EnableImportFindingsForProductInput{} },
		NewOutput: func() interface{} { return &securityhub.EnableImportFindingsForProductOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.EnableImportFindingsForProductWithContext(ctx, in.(*securityhub.EnableImportFindingsForProductInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DisableImportFindingsForProduct",
		Help: "Disable the integration of a product with Security Hub.",
		Params: []dispatch.Param{
			str("ProductSubscriptionArn", "The ARN of the integrated product.", required),
		},
		Mutating:  true,
		Target:    []string{"product-subscription-arn"},
		PassThru:  "product-subscription-arn",
		NewInput:  func() interface{} { return &securityhub.DisableImportFindingsForProductInput{} },
		NewOutput: func() interface{} { return &securityhub.DisableImportFindingsForProductOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DisableImportFindingsForProductWithContext(ctx, in.(*securityhub.DisableImportFindingsForProductInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListEnabledProductsForImport",
		Help: "List the product subscriptions that are enabled for the account.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "ProductSubscriptions",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListEnabledProductsForImportInput{} },
		NewOutput: func() interface{} { return &securityhub.ListEnabledProductsForImportOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListEnabledProductsForImportWithContext(ctx, in.(*securityhub.ListEnabledProductsForImportInput))
		}),
	})
}

func (c *Catalog) registerFindingAggregators() {
	c.register(&dispatch.Descriptor{
		Name: "CreateFindingAggregator",
		Help: "Enable cross-region aggregation of findings into the current region.",
		Params: []dispatch.Param{
			str("RegionLinkingMode", "Which regions to aggregate from: ALL_REGIONS, ALL_REGIONS_EXCEPT_SPECIFIED or SPECIFIED_REGIONS.", required),
			strs("Regions", "The regions to include or exclude, depending on the region linking mode."),
		},
		Select:    "FindingAggregatorArn",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.CreateFindingAggregatorInput{} },
		NewOutput: func() interface{} { return &securityhub.CreateFindingAggregatorOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.CreateFindingAggregatorWithContext(ctx, in.(*securityhub.CreateFindingAggregatorInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DeleteFindingAggregator",
		Help: "Stop cross-region aggregation of findings.",
		Params: []dispatch.Param{
			str("FindingAggregatorArn", "The ARN of the finding aggregator to delete.", required),
		},
		Mutating:  true,
		Target:    []string{"finding-aggregator-arn"},
		PassThru:  "finding-aggregator-arn",
		NewInput:  func() interface{} { return &securityhub.DeleteFindingAggregatorInput{} },
		NewOutput: func() interface{} { return &securityhub.DeleteFindingAggregatorOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeleteFindingAggregatorWithContext(ctx, in.(*securityhub.DeleteFindingAggregatorInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetFindingAggregator",
		Help: "Show the configuration of a finding aggregator.",
		Params: []dispatch.Param{
			str("FindingAggregatorArn", "The ARN of the finding aggregator.", required),
		},
		Select:    dispatch.SelectResponse,
		NewInput:  func() interface{} { return &securityhub.GetFindingAggregatorInput{} },
		NewOutput: func() interface{} { return &securityhub.GetFindingAggregatorOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetFindingAggregatorWithContext(ctx, in.(*securityhub.GetFindingAggregatorInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "ListFindingAggregators",
		Help: "List the finding aggregators of the account.",
		Params: []dispatch.Param{
			maxResults(),
		},
		Select:    "FindingAggregators",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.ListFindingAggregatorsInput{} },
		NewOutput: func() interface{} { return &securityhub.ListFindingAggregatorsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.ListFindingAggregatorsWithContext(ctx, in.(*securityhub.ListFindingAggregatorsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateFindingAggregator",
		Help: "Change the regions a finding aggregator aggregates from.",
		Params: []dispatch.Param{
			str("FindingAggregatorArn", "The ARN of the finding aggregator.", required),
			str("RegionLinkingMode", "Which regions to aggregate from: ALL_REGIONS, ALL_REGIONS_EXCEPT_SPECIFIED or SPECIFIED_REGIONS.", required),
			strs("Regions", "The regions to include or exclude, depending on the region linking mode."),
		},
		Select:    dispatch.SelectResponse,
		Mutating:  true,
		Target:    []string{"finding-aggregator-arn"},
		NewInput:  func() interface{} { return &securityhub.UpdateFindingAggregatorInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateFindingAggregatorOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateFindingAggregatorWithContext(ctx, in.(*securityhub.UpdateFindingAggregatorInput))
		}),
	})
}
