package db

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "create slots table",
		sql: `
			CREATE TABLE IF NOT EXISTS slots (
				name TEXT PRIMARY KEY,
				data TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
}
