// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/batch"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/document"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/maskrecord"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/ent/processjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Batch is the client for interacting with the Batch builders.
	Batch *BatchClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// MaskRecord is the client for interacting with the MaskRecord builders.
	MaskRecord *MaskRecordClient
	// ProcessJob is the client for interacting with the ProcessJob builders.
	ProcessJob *ProcessJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Batch = NewBatchClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.MaskRecord = NewMaskRecordClient(c.config)
	c.ProcessJob = NewProcessJobClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Batch:      NewBatchClient(cfg),
		Document:   NewDocumentClient(cfg),
		MaskRecord: NewMaskRecordClient(cfg),
		ProcessJob: NewProcessJobClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Batch:      NewBatchClient(cfg),
		Document:   NewDocumentClient(cfg),
		MaskRecord: NewMaskRecordClient(cfg),
		ProcessJob: NewProcessJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Batch.
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
	c.Batch.Use(hooks...)
	c.Document.Use(hooks...)
	c.MaskRecord.Use(hooks...)
	c.ProcessJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Batch.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.MaskRecord.Intercept(interceptors...)
	c.ProcessJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BatchMutation:
		return c.Batch.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *MaskRecordMutation:
		return c.MaskRecord.mutate(ctx, m)
	case *ProcessJobMutation:
		return c.ProcessJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BatchClient is a client for the Batch schema.
type BatchClient struct {
	config
}

// NewBatchClient returns a client for the Batch from the given config.
func NewBatchClient(c config) *BatchClient {
	return &BatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batch.Hooks(f(g(h())))`.
func (c *BatchClient) Use(hooks ...Hook) {
	c.hooks.Batch = append(c.hooks.Batch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batch.Intercept(f(g(h())))`.
func (c *BatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Batch = append(c.inters.Batch, interceptors...)
}

// Create returns a builder for creating a Batch entity.
func (c *BatchClient) Create() *BatchCreate {
	mutation := newBatchMutation(c.config, OpCreate)
	return &BatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Batch entities.
func (c *BatchClient) CreateBulk(builders ...*BatchCreate) *BatchCreateBulk {
	return &BatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchClient) MapCreateBulk(slice any, setFunc func(*BatchCreate, int)) *BatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchCreateBulk{err: fmt.Errorf("calling to BatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Batch.
func (c *BatchClient) Update() *BatchUpdate {
	mutation := newBatchMutation(c.config, OpUpdate)
	return &BatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchClient) UpdateOne(_m *Batch) *BatchUpdateOne {
	mutation := newBatchMutation(c.config, OpUpdateOne, withBatch(_m))
	return &BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchClient) UpdateOneID(id uuid.UUID) *BatchUpdateOne {
	mutation := newBatchMutation(c.config, OpUpdateOne, withBatchID(id))
	return &BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Batch.
func (c *BatchClient) Delete() *BatchDelete {
	mutation := newBatchMutation(c.config, OpDelete)
	return &BatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchClient) DeleteOne(_m *Batch) *BatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchClient) DeleteOneID(id uuid.UUID) *BatchDeleteOne {
	builder := c.Delete().Where(batch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchDeleteOne{builder}
}

// Query returns a query builder for Batch.
func (c *BatchClient) Query() *BatchQuery {
	return &BatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Batch entity by its id.
func (c *BatchClient) Get(ctx context.Context, id uuid.UUID) (*Batch, error) {
	return c.Query().Where(batch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchClient) GetX(ctx context.Context, id uuid.UUID) *Batch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Batch.
func (c *BatchClient) QueryDocuments(_m *Batch) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batch.Table, batch.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batch.DocumentsTable, batch.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Batch.
func (c *BatchClient) QueryJobs(_m *Batch) *ProcessJobQuery {
	query := (&ProcessJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batch.Table, batch.FieldID, id),
			sqlgraph.To(processjob.Table, processjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batch.JobsTable, batch.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchClient) Hooks() []Hook {
	return c.hooks.Batch
}

// Interceptors returns the client interceptors.
func (c *BatchClient) Interceptors() []Interceptor {
	return c.inters.Batch
}

func (c *BatchClient) mutate(ctx context.Context, m *BatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Batch mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatch queries the batch edge of a Document.
func (c *DocumentClient) QueryBatch(_m *Document) *BatchQuery {
	query := (&BatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(batch.Table, batch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.BatchTable, document.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMaskRecords queries the mask_records edge of a Document.
func (c *DocumentClient) QueryMaskRecords(_m *Document) *MaskRecordQuery {
	query := (&MaskRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(maskrecord.Table, maskrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.MaskRecordsTable, document.MaskRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// MaskRecordClient is a client for the MaskRecord schema.
type MaskRecordClient struct {
	config
}

// NewMaskRecordClient returns a client for the MaskRecord from the given config.
func NewMaskRecordClient(c config) *MaskRecordClient {
	return &MaskRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `maskrecord.Hooks(f(g(h())))`.
func (c *MaskRecordClient) Use(hooks ...Hook) {
	c.hooks.MaskRecord = append(c.hooks.MaskRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `maskrecord.Intercept(f(g(h())))`.
func (c *MaskRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MaskRecord = append(c.inters.MaskRecord, interceptors...)
}

// Create returns a builder for creating a MaskRecord entity.
func (c *MaskRecordClient) Create() *MaskRecordCreate {
	mutation := newMaskRecordMutation(c.config, OpCreate)
	return &MaskRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MaskRecord entities.
func (c *MaskRecordClient) CreateBulk(builders ...*MaskRecordCreate) *MaskRecordCreateBulk {
	return &MaskRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaskRecordClient) MapCreateBulk(slice any, setFunc func(*MaskRecordCreate, int)) *MaskRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaskRecordCreateBulk{err: fmt.Errorf("calling to MaskRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaskRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaskRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MaskRecord.
func (c *MaskRecordClient) Update() *MaskRecordUpdate {
	mutation := newMaskRecordMutation(c.config, OpUpdate)
	return &MaskRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaskRecordClient) UpdateOne(_m *MaskRecord) *MaskRecordUpdateOne {
	mutation := newMaskRecordMutation(c.config, OpUpdateOne, withMaskRecord(_m))
	return &MaskRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaskRecordClient) UpdateOneID(id uuid.UUID) *MaskRecordUpdateOne {
	mutation := newMaskRecordMutation(c.config, OpUpdateOne, withMaskRecordID(id))
	return &MaskRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MaskRecord.
func (c *MaskRecordClient) Delete() *MaskRecordDelete {
	mutation := newMaskRecordMutation(c.config, OpDelete)
	return &MaskRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaskRecordClient) DeleteOne(_m *MaskRecord) *MaskRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaskRecordClient) DeleteOneID(id uuid.UUID) *MaskRecordDeleteOne {
	builder := c.Delete().Where(maskrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaskRecordDeleteOne{builder}
}

// Query returns a query builder for MaskRecord.
func (c *MaskRecordClient) Query() *MaskRecordQuery {
	return &MaskRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaskRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MaskRecord entity by its id.
func (c *MaskRecordClient) Get(ctx context.Context, id uuid.UUID) (*MaskRecord, error) {
	return c.Query().Where(maskrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaskRecordClient) GetX(ctx context.Context, id uuid.UUID) *MaskRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a MaskRecord.
func (c *MaskRecordClient) QueryDocument(_m *MaskRecord) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(maskrecord.Table, maskrecord.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, maskrecord.DocumentTable, maskrecord.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MaskRecordClient) Hooks() []Hook {
	return c.hooks.MaskRecord
}

// Interceptors returns the client interceptors.
func (c *MaskRecordClient) Interceptors() []Interceptor {
	return c.inters.MaskRecord
}

func (c *MaskRecordClient) mutate(ctx context.Context, m *MaskRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaskRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaskRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaskRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaskRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MaskRecord mutation op: %q", m.Op())
	}
}

// ProcessJobClient is a client for the ProcessJob schema.
type ProcessJobClient struct {
	config
}

// NewProcessJobClient returns a client for the ProcessJob from the given config.
func NewProcessJobClient(c config) *ProcessJobClient {
	return &ProcessJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processjob.Hooks(f(g(h())))`.
func (c *ProcessJobClient) Use(hooks ...Hook) {
	c.hooks.ProcessJob = append(c.hooks.ProcessJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processjob.Intercept(f(g(h())))`.
func (c *ProcessJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessJob = append(c.inters.ProcessJob, interceptors...)
}

// Create returns a builder for creating a ProcessJob entity.
func (c *ProcessJobClient) Create() *ProcessJobCreate {
	mutation := newProcessJobMutation(c.config, OpCreate)
	return &ProcessJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessJob entities.
func (c *ProcessJobClient) CreateBulk(builders ...*ProcessJobCreate) *ProcessJobCreateBulk {
	return &ProcessJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessJobClient) MapCreateBulk(slice any, setFunc func(*ProcessJobCreate, int)) *ProcessJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessJobCreateBulk{err: fmt.Errorf("calling to ProcessJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessJob.
func (c *ProcessJobClient) Update() *ProcessJobUpdate {
	mutation := newProcessJobMutation(c.config, OpUpdate)
	return &ProcessJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessJobClient) UpdateOne(_m *ProcessJob) *ProcessJobUpdateOne {
	mutation := newProcessJobMutation(c.config, OpUpdateOne, withProcessJob(_m))
	return &ProcessJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessJobClient) UpdateOneID(id uuid.UUID) *ProcessJobUpdateOne {
	mutation := newProcessJobMutation(c.config, OpUpdateOne, withProcessJobID(id))
	return &ProcessJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessJob.
func (c *ProcessJobClient) Delete() *ProcessJobDelete {
	mutation := newProcessJobMutation(c.config, OpDelete)
	return &ProcessJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessJobClient) DeleteOne(_m *ProcessJob) *ProcessJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessJobClient) DeleteOneID(id uuid.UUID) *ProcessJobDeleteOne {
	builder := c.Delete().Where(processjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessJobDeleteOne{builder}
}

// Query returns a query builder for ProcessJob.
func (c *ProcessJobClient) Query() *ProcessJobQuery {
	return &ProcessJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessJob entity by its id.
func (c *ProcessJobClient) Get(ctx context.Context, id uuid.UUID) (*ProcessJob, error) {
	return c.Query().Where(processjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessJobClient) GetX(ctx context.Context, id uuid.UUID) *ProcessJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatch queries the batch edge of a ProcessJob.
func (c *ProcessJobClient) QueryBatch(_m *ProcessJob) *BatchQuery {
	query := (&BatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processjob.Table, processjob.FieldID, id),
			sqlgraph.To(batch.Table, batch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processjob.BatchTable, processjob.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessJobClient) Hooks() []Hook {
	return c.hooks.ProcessJob
}

// Interceptors returns the client interceptors.
func (c *ProcessJobClient) Interceptors() []Interceptor {
	return c.inters.ProcessJob
}

func (c *ProcessJobClient) mutate(ctx context.Context, m *ProcessJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Batch, Document, MaskRecord, ProcessJob []ent.Hook
	}
	inters struct {
		Batch, Document, MaskRecord, ProcessJob []ent.Interceptor
	}
)
