package preprocessor

// Result contains the outcome of extracting one script.
type Result struct {
	Statements    []Statement // Statements in source order
	Unresolved    []string    // Placeholder names with no binding
	CommentLines  int         // Number of whole-line comments removed
	ExcludedLines int         // Number of lines removed by the exclusion set
}

// Texts returns the statement texts in order.
func (r *Result) Texts() []string {
	texts := make([]string, len(r.Statements))
	for i, stmt := range r.Statements {
		texts[i] = stmt.Text
	}
	return texts
}

// Option configures a Pipeline.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	parameters map[string]string
	exclusions []string
	directives *DirectiveTable
}

// WithParameters binds placeholder names to values. Later calls add to earlier ones.
func WithParameters(params map[string]string) Option {
	return func(o *pipelineOptions) {
		if o.parameters == nil {
			o.parameters = make(map[string]string, len(params))
		}
		for k, v := range params {
			o.parameters[k] = v
		}
	}
}

// WithExclusions adds exact lines that are dropped before any other processing.
func WithExclusions(exclusions []string) Option {
	return func(o *pipelineOptions) {
		o.exclusions = append(o.exclusions, exclusions...)
	}
}

// WithDirectives adds keyword sequences to the directive table.
func WithDirectives(directives ...string) Option {
	return func(o *pipelineOptions) {
		o.directives = o.directives.With(directives...)
	}
}

// WithDirectiveTable replaces the directive table.
func WithDirectiveTable(table *DirectiveTable) Option {
	return func(o *pipelineOptions) {
		if table != nil {
			o.directives = table
		}
	}
}

// Pipeline turns raw script text into statements:
// comments, then exclusions, then placeholders, then splitting.
// A Pipeline holds only read-only configuration and is safe for concurrent use.
type Pipeline struct {
	commentStripper CommentStripper
	exclusionFilter *ExclusionFilter
	substitutor     *PlaceholderSubstitutor
	splitter        *StatementSplitter
}

// NewPipeline creates a new extraction pipeline.
func NewPipeline(opts ...Option) *Pipeline {
	o := &pipelineOptions{directives: DefaultDirectiveTable()}
	for _, opt := range opts {
		opt(o)
	}

	return &Pipeline{
		commentStripper: NewCommentStripper(),
		exclusionFilter: NewExclusionFilter(o.exclusions),
		substitutor:     NewPlaceholderSubstitutor(o.parameters),
		splitter:        NewStatementSplitter(o.directives),
	}
}

// Process extracts statements from scriptText and reports what was removed
// and which placeholders stayed unresolved.
func (p *Pipeline) Process(scriptText string) *Result {
	lines := NewScript(scriptText).Lines()

	stripped := p.commentStripper.Strip(lines)
	filtered := p.exclusionFilter.Filter(stripped)

	return &Result{
		Statements:    p.splitter.Split(p.substitutor.Substitute(filtered)),
		Unresolved:    p.substitutor.Unresolved(filtered),
		CommentLines:  len(lines) - len(stripped),
		ExcludedLines: len(stripped) - len(filtered),
	}
}

// Extract returns the statements of scriptText in source order.
func (p *Pipeline) Extract(scriptText string) []Statement {
	return p.Process(scriptText).Statements
}

// ExtractStatements returns the executable statements of a Hive script.
// parameters and exclusions may be nil.
func ExtractStatements(scriptText string, parameters map[string]string, exclusions []string) []string {
	p := NewPipeline(WithParameters(parameters), WithExclusions(exclusions))
	return p.Process(scriptText).Texts()
}

// Unresolved returns the placeholder names in scriptText that have no binding.
// Commented and excluded lines are not considered.
func (p *Pipeline) Unresolved(scriptText string) []string {
	lines := p.exclusionFilter.Filter(p.commentStripper.Strip(NewScript(scriptText).Lines()))
	return p.substitutor.Unresolved(lines)
}
