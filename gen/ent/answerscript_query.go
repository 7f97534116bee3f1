// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/google/uuid"
)

// AnswerScriptQuery is the builder for querying AnswerScript entities.
type AnswerScriptQuery struct {
	config
	ctx             *QueryContext
	order           []answerscript.OrderOption
	inters          []Interceptor
	predicates      []predicate.AnswerScript
	withExamination *ExaminationQuery
	withStudent     *StudentQuery
	withAnswers     *AnswerQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnswerScriptQuery builder.
func (_q *AnswerScriptQuery) Where(ps ...predicate.AnswerScript) *AnswerScriptQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AnswerScriptQuery) Limit(limit int) *AnswerScriptQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AnswerScriptQuery) Offset(offset int) *AnswerScriptQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AnswerScriptQuery) Unique(unique bool) *AnswerScriptQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AnswerScriptQuery) Order(o ...answerscript.OrderOption) *AnswerScriptQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExamination chains the current query on the "examination" edge.
func (_q *AnswerScriptQuery) QueryExamination() *ExaminationQuery {
	query := (&ExaminationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(answerscript.Table, answerscript.FieldID, selector),
			sqlgraph.To(examination.Table, examination.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answerscript.ExaminationTable, answerscript.ExaminationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStudent chains the current query on the "student" edge.
func (_q *AnswerScriptQuery) QueryStudent() *StudentQuery {
	query := (&StudentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(answerscript.Table, answerscript.FieldID, selector),
			sqlgraph.To(student.Table, student.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answerscript.StudentTable, answerscript.StudentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnswers chains the current query on the "answers" edge.
func (_q *AnswerScriptQuery) QueryAnswers() *AnswerQuery {
	query := (&AnswerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(answerscript.Table, answerscript.FieldID, selector),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, answerscript.AnswersTable, answerscript.AnswersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AnswerScript entity from the query.
// Returns a *NotFoundError when no AnswerScript was found.
func (_q *AnswerScriptQuery) First(ctx context.Context) (*AnswerScript, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{answerscript.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AnswerScriptQuery) FirstX(ctx context.Context) *AnswerScript {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AnswerScript ID from the query.
// Returns a *NotFoundError when no AnswerScript ID was found.
func (_q *AnswerScriptQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{answerscript.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AnswerScriptQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AnswerScript entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AnswerScript entity is found.
// Returns a *NotFoundError when no AnswerScript entities are found.
func (_q *AnswerScriptQuery) Only(ctx context.Context) (*AnswerScript, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{answerscript.Label}
	default:
		return nil, &NotSingularError{answerscript.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AnswerScriptQuery) OnlyX(ctx context.Context) *AnswerScript {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AnswerScript ID in the query.
// Returns a *NotSingularError when more than one AnswerScript ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AnswerScriptQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{answerscript.Label}
	default:
		err = &NotSingularError{answerscript.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AnswerScriptQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AnswerScripts.
func (_q *AnswerScriptQuery) All(ctx context.Context) ([]*AnswerScript, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AnswerScript, *AnswerScriptQuery]()
	return withInterceptors[[]*AnswerScript](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AnswerScriptQuery) AllX(ctx context.Context) []*AnswerScript {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AnswerScript IDs.
func (_q *AnswerScriptQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(answerscript.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AnswerScriptQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AnswerScriptQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AnswerScriptQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AnswerScriptQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AnswerScriptQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AnswerScriptQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnswerScriptQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AnswerScriptQuery) Clone() *AnswerScriptQuery {
	if _q == nil {
		return nil
	}
	return &AnswerScriptQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]answerscript.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.AnswerScript{}, _q.predicates...),
		withExamination: _q.withExamination.Clone(),
		withStudent:     _q.withStudent.Clone(),
		withAnswers:     _q.withAnswers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExamination tells the query-builder to eager-load the nodes that are connected to
// the "examination" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnswerScriptQuery) WithExamination(opts ...func(*ExaminationQuery)) *AnswerScriptQuery {
	query := (&ExaminationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExamination = query
	return _q
}

// WithStudent tells the query-builder to eager-load the nodes that are connected to
// the "student" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnswerScriptQuery) WithStudent(opts ...func(*StudentQuery)) *AnswerScriptQuery {
	query := (&StudentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStudent = query
	return _q
}

// WithAnswers tells the query-builder to eager-load the nodes that are connected to
// the "answers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnswerScriptQuery) WithAnswers(opts ...func(*AnswerQuery)) *AnswerScriptQuery {
	query := (&AnswerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnswers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExaminationID uuid.UUID `json:"examination_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AnswerScript.Query().
//		GroupBy(answerscript.FieldExaminationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AnswerScriptQuery) GroupBy(field string, fields ...string) *AnswerScriptGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnswerScriptGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = answerscript.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExaminationID uuid.UUID `json:"examination_id,omitempty"`
//	}
//
//	client.AnswerScript.Query().
//		Select(answerscript.FieldExaminationID).
//		Scan(ctx, &v)
func (_q *AnswerScriptQuery) Select(fields ...string) *AnswerScriptSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AnswerScriptSelect{AnswerScriptQuery: _q}
	sbuild.label = answerscript.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnswerScriptSelect configured with the given aggregations.
func (_q *AnswerScriptQuery) Aggregate(fns ...AggregateFunc) *AnswerScriptSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AnswerScriptQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !answerscript.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AnswerScriptQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AnswerScript, error) {
	var (
		nodes       = []*AnswerScript{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withExamination != nil,
			_q.withStudent != nil,
			_q.withAnswers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AnswerScript).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AnswerScript{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withExamination; query != nil {
		if err := _q.loadExamination(ctx, query, nodes, nil,
			func(n *AnswerScript, e *Examination) { n.Edges.Examination = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStudent; query != nil {
		if err := _q.loadStudent(ctx, query, nodes, nil,
			func(n *AnswerScript, e *Student) { n.Edges.Student = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnswers; query != nil {
		if err := _q.loadAnswers(ctx, query, nodes,
			func(n *AnswerScript) { n.Edges.Answers = []*Answer{} },
			func(n *AnswerScript, e *Answer) { n.Edges.Answers = append(n.Edges.Answers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AnswerScriptQuery) loadExamination(ctx context.Context, query *ExaminationQuery, nodes []*AnswerScript, init func(*AnswerScript), assign func(*AnswerScript, *Examination)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AnswerScript)
	for i := range nodes {
		fk := nodes[i].ExaminationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(examination.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "examination_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AnswerScriptQuery) loadStudent(ctx context.Context, query *StudentQuery, nodes []*AnswerScript, init func(*AnswerScript), assign func(*AnswerScript, *Student)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AnswerScript)
	for i := range nodes {
		if nodes[i].StudentID == nil {
			continue
		}
		fk := *nodes[i].StudentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(student.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "student_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AnswerScriptQuery) loadAnswers(ctx context.Context, query *AnswerQuery, nodes []*AnswerScript, init func(*AnswerScript), assign func(*AnswerScript, *Answer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*AnswerScript)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(answer.FieldAnswerScriptID)
	}
	query.Where(predicate.Answer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(answerscript.AnswersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnswerScriptID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "answer_script_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AnswerScriptQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AnswerScriptQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(answerscript.Table, answerscript.Columns, sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerscript.FieldID)
		for i := range fields {
			if fields[i] != answerscript.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExamination != nil {
			_spec.Node.AddColumnOnce(answerscript.FieldExaminationID)
		}
		if _q.withStudent != nil {
			_spec.Node.AddColumnOnce(answerscript.FieldStudentID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AnswerScriptQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(answerscript.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = answerscript.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AnswerScriptGroupBy is the group-by builder for AnswerScript entities.
type AnswerScriptGroupBy struct {
	selector
	build *AnswerScriptQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AnswerScriptGroupBy) Aggregate(fns ...AggregateFunc) *AnswerScriptGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AnswerScriptGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnswerScriptQuery, *AnswerScriptGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AnswerScriptGroupBy) sqlScan(ctx context.Context, root *AnswerScriptQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AnswerScriptSelect is the builder for selecting fields of AnswerScript entities.
type AnswerScriptSelect struct {
	*AnswerScriptQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AnswerScriptSelect) Aggregate(fns ...AggregateFunc) *AnswerScriptSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AnswerScriptSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnswerScriptQuery, *AnswerScriptSelect](ctx, _s.AnswerScriptQuery, _s, _s.inters, v)
}

func (_s *AnswerScriptSelect) sqlScan(ctx context.Context, root *AnswerScriptQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
