// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Blueprint is the client for interacting with the Blueprint builders.
	Blueprint *BlueprintClient
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Blueprint = NewBlueprintClient(c.config)
	c.ExtractionJob = NewExtractionJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Blueprint:     NewBlueprintClient(cfg),
		ExtractionJob: NewExtractionJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Blueprint:     NewBlueprintClient(cfg),
		ExtractionJob: NewExtractionJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Blueprint.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Blueprint.Use(hooks...)
	c.ExtractionJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Blueprint.Intercept(interceptors...)
	c.ExtractionJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BlueprintMutation:
		return c.Blueprint.mutate(ctx, m)
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BlueprintClient is a client for the Blueprint schema.
type BlueprintClient struct {
	config
}

// NewBlueprintClient returns a client for the Blueprint from the given config.
func NewBlueprintClient(c config) *BlueprintClient {
	return &BlueprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprint.Hooks(f(g(h())))`.
func (c *BlueprintClient) Use(hooks ...Hook) {
	c.hooks.Blueprint = append(c.hooks.Blueprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprint.Intercept(f(g(h())))`.
func (c *BlueprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Blueprint = append(c.inters.Blueprint, interceptors...)
}

// Create returns a builder for creating a Blueprint entity.
func (c *BlueprintClient) Create() *BlueprintCreate {
	mutation := newBlueprintMutation(c.config, OpCreate)
	return &BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Blueprint entities.
func (c *BlueprintClient) CreateBulk(builders ...*BlueprintCreate) *BlueprintCreateBulk {
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintClient) MapCreateBulk(slice any, setFunc func(*BlueprintCreate, int)) *BlueprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintCreateBulk{err: fmt.Errorf("calling to BlueprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Blueprint.
func (c *BlueprintClient) Update() *BlueprintUpdate {
	mutation := newBlueprintMutation(c.config, OpUpdate)
	return &BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintClient) UpdateOne(_m *Blueprint) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprint(_m))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintClient) UpdateOneID(id uuid.UUID) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprintID(id))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Blueprint.
func (c *BlueprintClient) Delete() *BlueprintDelete {
	mutation := newBlueprintMutation(c.config, OpDelete)
	return &BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintClient) DeleteOne(_m *Blueprint) *BlueprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintClient) DeleteOneID(id uuid.UUID) *BlueprintDeleteOne {
	builder := c.Delete().Where(blueprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintDeleteOne{builder}
}

// Query returns a query builder for Blueprint.
func (c *BlueprintClient) Query() *BlueprintQuery {
	return &BlueprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Blueprint entity by its id.
func (c *BlueprintClient) Get(ctx context.Context, id uuid.UUID) (*Blueprint, error) {
	return c.Query().Where(blueprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintClient) GetX(ctx context.Context, id uuid.UUID) *Blueprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Blueprint.
func (c *BlueprintClient) QueryJobs(_m *Blueprint) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprint.JobsTable, blueprint.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintClient) Hooks() []Hook {
	return c.hooks.Blueprint
}

// Interceptors returns the client interceptors.
func (c *BlueprintClient) Interceptors() []Interceptor {
	return c.inters.Blueprint
}

func (c *BlueprintClient) mutate(ctx context.Context, m *BlueprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Blueprint mutation op: %q", m.Op())
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id uuid.UUID) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id uuid.UUID) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlueprint queries the blueprint edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryBlueprint(_m *ExtractionJob) *BlueprintQuery {
	query := (&BlueprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(blueprint.Table, blueprint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionjob.BlueprintTable, extractionjob.BlueprintColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Blueprint, ExtractionJob []ent.Hook
	}
	inters struct {
		Blueprint, ExtractionJob []ent.Interceptor
	}
)
