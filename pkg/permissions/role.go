package permissions

// ExecutionRole is the security principal a compute unit runs under.
// Statements attached at declaration time accumulate in order.
type ExecutionRole struct {
	Name string

	statements []Statement
}

func NewExecutionRole(name string) *ExecutionRole {
	return &ExecutionRole{
		Name: name,
	}
}

func (r *ExecutionRole) AttachStatement(statement Statement) {
	r.statements = append(r.statements, statement)
}

func (r *ExecutionRole) Statements() []Statement {
	statements := make([]Statement, len(r.statements))
	copy(statements, r.statements)
	return statements
}

func (r *ExecutionRole) Document() PolicyDocument {
	return PolicyDocument{
		Version:    PolicyVersion,
		Statements: r.Statements(),
	}
}
