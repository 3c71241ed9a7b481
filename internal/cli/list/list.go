package list

type ListCmd struct {
	Tests      ListTestsCmd      `cmd:"" help:"List registered tests" default:"1"`
	Categories ListCategoriesCmd `cmd:"" help:"List all test categories"`
}
