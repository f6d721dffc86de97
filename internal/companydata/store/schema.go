package store

func schema(d Dialect) []string {
	idType, tsType, jsonType := "TEXT", "TIMESTAMP", "TEXT"
	if d == DialectPostgres {
		idType, tsType, jsonType = "UUID", "TIMESTAMPTZ", "JSONB"
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id ` + idType + ` PRIMARY KEY,
			name TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT '',
			created_at ` + tsType + ` NOT NULL,
			updated_at ` + tsType + ` NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS companies_name_idx ON companies (name)`,
		`CREATE TABLE IF NOT EXISTS company_data (
			id ` + idType + ` PRIMARY KEY,
			company_id ` + idType + ` NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			source TEXT NOT NULL DEFAULT '',
			country_code TEXT NOT NULL DEFAULT '',
			data_type TEXT NOT NULL,
			value TEXT NOT NULL,
			value_type TEXT NOT NULL DEFAULT 'str',
			created_at ` + tsType + ` NOT NULL,
			updated_at ` + tsType + ` NOT NULL,
			UNIQUE (company_id, source, country_code, data_type)
		)`,
		`CREATE INDEX IF NOT EXISTS company_data_company_country_idx ON company_data (company_id, country_code)`,
		`CREATE INDEX IF NOT EXISTS company_data_type_idx ON company_data (data_type)`,
		`CREATE TABLE IF NOT EXISTS company_documents (
			id ` + idType + ` PRIMARY KEY,
			company_id ` + idType + ` NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			source TEXT NOT NULL DEFAULT '',
			country_code TEXT NOT NULL DEFAULT '',
			document_type TEXT NOT NULL,
			title TEXT NOT NULL,
			record_date TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			metadata ` + jsonType + ` NOT NULL,
			created_at ` + tsType + ` NOT NULL,
			updated_at ` + tsType + ` NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS company_documents_company_country_idx ON company_documents (company_id, country_code)`,
		`CREATE INDEX IF NOT EXISTS company_documents_type_idx ON company_documents (document_type)`,
		`CREATE INDEX IF NOT EXISTS company_documents_date_idx ON company_documents (record_date)`,
		`CREATE TABLE IF NOT EXISTS company_events (
			id ` + idType + ` PRIMARY KEY,
			company_id ` + idType + ` NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			source TEXT NOT NULL DEFAULT '',
			country_code TEXT NOT NULL DEFAULT '',
			event_type TEXT NOT NULL,
			title TEXT NOT NULL,
			record_date TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			metadata ` + jsonType + ` NOT NULL,
			created_at ` + tsType + ` NOT NULL,
			updated_at ` + tsType + ` NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS company_events_company_country_idx ON company_events (company_id, country_code)`,
		`CREATE INDEX IF NOT EXISTS company_events_type_idx ON company_events (event_type)`,
		`CREATE INDEX IF NOT EXISTS company_events_date_idx ON company_events (record_date)`,
	}
}
