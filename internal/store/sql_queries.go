// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Fixed statements with RETURNING clauses; list/lookup queries are built with
// squirrel in the repositories.
const (
	createUser = `INSERT INTO users (username, password_hash, name, email)
	VALUES ($1, $2, $3, $4)
	RETURNING user_id, username, name, email;`

	createMessage = `WITH inserted AS (
		INSERT INTO messages (user_id, content)
		VALUES ($1, $2)
		RETURNING id, user_id, content, created_at
	)
	SELECT i.id, i.user_id, u.name, i.content, i.created_at
	FROM inserted i
	JOIN users u ON u.user_id = i.user_id;`
)
