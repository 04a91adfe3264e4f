// Package catalog holds the descriptors of the AWS Security Hub operations.
//
// Every operation is described by data only: its parameters, the response
// field it emits by default, whether it paginates and whether it mutates.
// The behavior of the operations is implemented once, by the dispatch package.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

// ClientFunc returns the Security Hub client the operations are performed with.
type ClientFunc func() (securityhubiface.SecurityHubAPI, error)

// Catalog is the set of Security Hub operations.
type Catalog struct {
	newClient   ClientFunc
	descriptors []*dispatch.Descriptor
	byName      map[string]*dispatch.Descriptor
}

// New returns the catalog of all Security Hub operations. The client is
// only requested when an operation is performed.
func New(newClient ClientFunc) *Catalog {
	c := &Catalog{
		newClient: newClient,
		byName:    make(map[string]*dispatch.Descriptor),
	}
	c.registerHub()
	c.registerOrganization()
	c.registerMembers()
	c.registerInvitations()
	c.registerFindings()
	c.registerInsights()
	c.registerActionTargets()
	c.registerStandards()
	c.registerConfigurationPolicies()
	c.registerSecurityControls()
	c.registerProducts()
	c.registerFindingAggregators()
	c.registerAutomationRules()
	c.registerTags()

	sort.Slice(c.descriptors, func(i, j int) bool {
		return c.descriptors[i].CommandName() < c.descriptors[j].CommandName()
	})
	return c
}

// All returns the descriptors of all operations, ordered by command name.
func (c *Catalog) All() []*dispatch.Descriptor {
	all := make([]*dispatch.Descriptor, len(c.descriptors))
	copy(all, c.descriptors)
	return all
}

// Lookup returns the operation with the given API name or command name.
func (c *Catalog) Lookup(name string) (*dispatch.Descriptor, bool) {
	d, ok := c.byName[strings.ToLower(name)]
	return d, ok
}

// register adds an operation to the catalog.
// It panics when an operation with the same name is registered twice.
func (c *Catalog) register(d *dispatch.Descriptor) {
	for _, key := range []string{strings.ToLower(d.Name), d.CommandName()} {
		if existing, exists := c.byName[key]; exists && existing != d {
			panic(fmt.Sprintf("catalog: operation %s registered twice", key))
		}
		c.byName[key] = d
	}
	c.descriptors = append(c.descriptors, d)
}

// call binds a typed SDK call to the lazily created client.
func (c *Catalog) call(fn func(ctx context.Context, api securityhubiface.SecurityHubAPI, input interface{}) (interface{}, error)) dispatch.Backend {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		api, err := c.newClient()
		if err != nil {
			return nil, err
		}
		return fn(ctx, api, input)
	}
}

type paramOption func(*dispatch.Param)

// required marks a parameter as required by the service.
func required(p *dispatch.Param) {
	p.Required = true
}

// alias adds alternative names for a parameter.
func alias(names ...string) paramOption {
	return func(p *dispatch.Param) {
		p.Aliases = append(p.Aliases, names...)
	}
}

// named overrides the command-line name derived from the field path.
func named(name string) paramOption {
	return func(p *dispatch.Param) {
		p.Name = name
	}
}

func param(t dispatch.ParamType, field, help string, opts ...paramOption) dispatch.Param {
	p := dispatch.Param{
		Name:  dispatch.CommandName(field),
		Field: field,
		Type:  t,
		Help:  help,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func str(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeString, field, help, opts...)
}

func integer(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeInt, field, help, opts...)
}

func number(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeFloat, field, help, opts...)
}

func boolean(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeBool, field, help, opts...)
}

func timestamp(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeTime, field, help, opts...)
}

func strs(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeStringList, field, help, opts...)
}

func strmap(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeStringMap, field, help, opts...)
}

func doc(field, help string, opts ...paramOption) dispatch.Param {
	return param(dispatch.TypeDocument, field, help, opts...)
}

func maxResults() dispatch.Param {
	return integer("MaxResults", "The maximum number of results to return per call.")
}

func tags() dispatch.Param {
	return strmap("Tags", "The tags to add, as key=value pairs.")
}
