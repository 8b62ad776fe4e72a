package mcp

func (s *MssqlMCPServer) registerTools() {
	// Execute SQL
	s.server.AddTool(s.toolExecuteSQL())

	// List Tables
	s.server.AddTool(s.toolListTables())

	// Describe Table
	s.server.AddTool(s.toolDescribeTable())
}

func (s *MssqlMCPServer) registerResources() {
	// Table data as mssql:// resources
	s.server.AddResourceTemplate(s.resourceTableData())
}
