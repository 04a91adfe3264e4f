package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

const filtersHelp = `The finding attributes to filter on, e.g. {"SeverityLabel":[{"Value":"CRITICAL","Comparison":"EQUALS"}]}.`

func (c *Catalog) registerFindings() {
	c.register(&dispatch.Descriptor{
		Name: "GetFindings",
		Help: "List the findings that match the given filters.",
		Params: []dispatch.Param{
			doc("Filters", filtersHelp),
			doc("SortCriteria", `The finding attributes to sort on, e.g. [{"Field":"SeverityNormalized","SortOrder":"desc"}].`),
			maxResults(),
		},
		Select:    "Findings",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.GetFindingsInput{} },
		NewOutput: func() interface{} { return &securityhub.GetFindingsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetFindingsWithContext(ctx, in.(*securityhub.GetFindingsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetFindingHistory",
		Help: "Show the history of a finding over a period of time.",
		Params: []dispatch.Param{
			str("FindingIdentifier.Id", "The identifier of the finding.", named("finding-id"), required),
			str("FindingIdentifier.ProductArn", "The ARN of the product that generated the finding.", named("product-arn"), required),
			timestamp("StartTime", "The start of the period, in RFC 3339 format."),
			timestamp("EndTime", "The end of the period, in RFC 3339 format."),
			maxResults(),
		},
		Select:    "Records",
		Paginated: true,
		Target:    []string{"finding-id"},
		NewInput:  func() interface{} { return &securityhub.GetFindingHistoryInput{} },
		NewOutput: func() interface{} { return &securityhub.GetFindingHistoryOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetFindingHistoryWithContext(ctx, in.(*securityhub.GetFindingHistoryInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchImportFindings",
		Help: "Import findings in the AWS Security Finding Format.",
		Params: []dispatch.Param{
			doc("Findings", "The findings to import, as a list of AWS Security Finding Format documents.", required),
		},
		Select:    dispatch.SelectResponse,
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.BatchImportFindingsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchImportFindingsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchImportFindingsWithContext(ctx, in.(*securityhub.BatchImportFindingsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "BatchUpdateFindings",
		Help: "Update the customer-controlled fields of the given findings.",
		Params: []dispatch.Param{
			doc("FindingIdentifiers", `The findings to update, e.g. [{"Id":"...","ProductArn":"..."}].`, required),
			str("Note.Text", "The text of the note to add to the findings."),
			str("Note.UpdatedBy", "The principal that created the note.", alias("updated-by")),
			str("Severity.Label", "The severity label: INFORMATIONAL, LOW, MEDIUM, HIGH or CRITICAL."),
			integer("Severity.Normalized", "The normalized severity, from 0 to 100."),
			number("Severity.Product", "The native severity as defined by the product that generated the finding."),
			str("Workflow.Status", "The workflow status: NEW, NOTIFIED, RESOLVED or SUPPRESSED.", alias("status")),
			str("VerificationState", "The veracity of the findings: UNKNOWN, TRUE_POSITIVE, FALSE_POSITIVE or BENIGN_POSITIVE."),
			integer("Confidence", "The confidence that the findings identify what they should, from 0 to 100."),
			integer("Criticality", "The importance of the resources associated with the findings, from 0 to 100."),
			strs("Types", "The finding types, in namespace/category/classifier form."),
			strmap("UserDefinedFields", "Custom fields to add to the findings, as key=value pairs."),
			doc("RelatedFindings", "The findings that are related to the updated findings."),
		},
		Select:    "UnprocessedFindings",
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.BatchUpdateFindingsInput{} },
		NewOutput: func() interface{} { return &securityhub.BatchUpdateFindingsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.BatchUpdateFindingsWithContext(ctx, in.(*securityhub.BatchUpdateFindingsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateFindings",
		Help: "Update the note and record state of the findings that match the given filters. Replaced by batch-update-findings.",
		Params: []dispatch.Param{
			doc("Filters", filtersHelp, required),
			str("Note.Text", "The text of the note to add to the findings."),
			str("Note.UpdatedBy", "The principal that created the note.", alias("updated-by")),
			str("RecordState", "The record state: ACTIVE or ARCHIVED."),
		},
		Mutating:  true,
		NewInput:  func() interface{} { return &securityhub.UpdateFindingsInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateFindingsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateFindingsWithContext(ctx, in.(*securityhub.UpdateFindingsInput))
		}),
	})
}

func (c *Catalog) registerInsights() {
	c.register(&dispatch.Descriptor{
		Name: "CreateInsight",
		Help: "Create a custom insight: a collection of findings grouped by an attribute.",
		Params: []dispatch.Param{
			str("Name", "The name of the insight.", required),
			doc("Filters", filtersHelp, required),
			str("GroupByAttribute", "The finding attribute to group the findings by, e.g. ResourceId.", required),
		},
		Select:    "InsightArn",
		Mutating:  true,
		Target:    []string{"name"},
		NewInput:  func() interface{} { return &securityhub.CreateInsightInput{} },
		NewOutput: func() interface{} { return &securityhub.CreateInsightOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.CreateInsightWithContext(ctx, in.(*securityhub.CreateInsightInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "DeleteInsight",
		Help: "Delete a custom insight.",
		Params: []dispatch.Param{
			str("InsightArn", "The ARN of the insight to delete.", required),
		},
		Select:    "InsightArn",
		Mutating:  true,
		Target:    []string{"insight-arn"},
		NewInput:  func() interface{} { return &securityhub.DeleteInsightInput{} },
		NewOutput: func() interface{} { return &securityhub.DeleteInsightOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.DeleteInsightWithContext(ctx, in.(*securityhub.DeleteInsightInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetInsightResults",
		Help: "Show the results of an insight.",
		Params: []dispatch.Param{
			str("InsightArn", "The ARN of the insight.", required),
		},
		Select:    "InsightResults",
		NewInput:  func() interface{} { return &securityhub.GetInsightResultsInput{} },
		NewOutput: func() interface{} { return &securityhub.GetInsightResultsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetInsightResultsWithContext(ctx, in.(*securityhub.GetInsightResultsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "GetInsights",
		Help: "List the given insights, or all custom insights when none are given.",
		Params: []dispatch.Param{
			strs("InsightArns", "The ARNs of the insights to show."),
			maxResults(),
		},
		Select:    "Insights",
		Paginated: true,
		NewInput:  func() interface{} { return &securityhub.GetInsightsInput{} },
		NewOutput: func() interface{} { return &securityhub.GetInsightsOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.GetInsightsWithContext(ctx, in.(*securityhub.GetInsightsInput))
		}),
	})

	c.register(&dispatch.Descriptor{
		Name: "UpdateInsight",
		Help: "Update the name, filters or grouping attribute of a custom insight.",
		Params: []dispatch.Param{
			str("InsightArn", "The ARN of the insight to update.", required),
			str("Name", "The new name of the insight."),
			doc("Filters", filtersHelp),
			str("GroupByAttribute", "The new attribute to group the findings by."),
		},
		Mutating:  true,
		Target:    []string{"insight-arn"},
		PassThru:  "insight-arn",
		NewInput:  func() interface{} { return &securityhub.UpdateInsightInput{} },
		NewOutput: func() interface{} { return &securityhub.UpdateInsightOutput{} },
		Call: c.call(func(ctx context.Context, api securityhubiface.SecurityHubAPI, in interface{}) (interface{}, error) {
			return api.UpdateInsightWithContext(ctx, in.(*securityhub.UpdateInsightInput))
		}),
	})
}
