package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

const (
	collectionEmails     = "emails"
	collectionProposals  = "proposals"
	collectionSentEmails = "sent_emails"
)

// collection is one named JSONB document collection inside the shared
// documents table.
type collection struct {
	db   *PostgresDB
	name string
}

func (c collection) insert(ctx context.Context, doc any) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: marshal %s document: %v", domain.ErrPersistence, c.name, err)
	}

	var id string
	err = c.db.QueryRow(ctx,
		`INSERT INTO documents (collection, doc) VALUES ($1, $2) RETURNING id`,
		c.name, data,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%w: insert into %s: %v", domain.ErrPersistence, c.name, err)
	}
	return id, nil
}

func (c collection) get(ctx context.Context, id string, dest any) (int64, error) {
	var data []byte
	var revision int64
	err := c.db.QueryRow(ctx,
		`SELECT doc, revision FROM documents WHERE collection = $1 AND id = $2`,
		c.name, id,
	).Scan(&data, &revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s document %s", domain.ErrNotFound, c.name, id)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: load %s document %s: %v", domain.ErrPersistence, c.name, id, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return 0, fmt.Errorf("%w: decode %s document %s: %v", domain.ErrPersistence, c.name, id, err)
	}
	return revision, nil
}

func (c collection) getWhere(ctx context.Context, predicate string, arg any, dest any) (string, int64, error) {
	var id string
	var data []byte
	var revision int64
	query := fmt.Sprintf(
		`SELECT id, doc, revision FROM documents WHERE collection = $1 AND %s ORDER BY created_at LIMIT 1`,
		predicate,
	)
	err := c.db.QueryRow(ctx, query, c.name, arg).Scan(&id, &data, &revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, fmt.Errorf("%w: %s document", domain.ErrNotFound, c.name)
	}
	if err != nil {
		return "", 0, fmt.Errorf("%w: query %s: %v", domain.ErrPersistence, c.name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return "", 0, fmt.Errorf("%w: decode %s document %s: %v", domain.ErrPersistence, c.name, id, err)
	}
	return id, revision, nil
}

// update replaces the document body, rejecting writers holding a stale
// revision.
func (c collection) update(ctx context.Context, id string, revision int64, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: marshal %s document %s: %v", domain.ErrPersistence, c.name, id, err)
	}

	tag, err := c.db.Exec(ctx,
		`UPDATE documents
		 SET doc = $1, revision = revision + 1, updated_at = now()
		 WHERE collection = $2 AND id = $3 AND revision = $4`,
		data, c.name, id, revision,
	)
	if err != nil {
		return fmt.Errorf("%w: update %s document %s: %v", domain.ErrPersistence, c.name, id, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the document is gone or someone else wrote first.
		var exists bool
		if err := c.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM documents WHERE collection = $1 AND id = $2)`,
			c.name, id,
		).Scan(&exists); err == nil && !exists {
			return fmt.Errorf("%w: %s document %s", domain.ErrNotFound, c.name, id)
		}
		return fmt.Errorf("%w: stale revision %d for %s document %s", domain.ErrPersistence, revision, c.name, id)
	}
	return nil
}

func (c collection) delete(ctx context.Context, id string) error {
	tag, err := c.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		c.name, id,
	)
	if err != nil {
		return fmt.Errorf("%w: delete %s document %s: %v", domain.ErrPersistence, c.name, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s document %s", domain.ErrNotFound, c.name, id)
	}
	return nil
}

// EmailStore persists inbound emails as documents.
type EmailStore struct {
	col collection
}

func NewEmailStore(db *PostgresDB) *EmailStore {
	return &EmailStore{col: collection{db: db, name: collectionEmails}}
}

func (s *EmailStore) FindByID(ctx context.Context, id string) (*domain.Email, error) {
	var email domain.Email
	if _, err := s.col.get(ctx, id, &email); err != nil {
		return nil, err
	}
	email.ID = id
	return &email, nil
}

func (s *EmailStore) FindByMessageID(ctx context.Context, messageID string) (*domain.Email, error) {
	var email domain.Email
	id, _, err := s.col.getWhere(ctx, `doc->>'message_id' = $2`, messageID, &email)
	if err != nil {
		return nil, err
	}
	email.ID = id
	return &email, nil
}

func (s *EmailStore) FindAll(ctx context.Context, filter port.EmailFilter) ([]domain.Email, error) {
	query := `SELECT id, doc FROM documents WHERE collection = $1`
	args := []any{collectionEmails}

	if filter.Processed != nil {
		args = append(args, fmt.Sprintf("%t", *filter.Processed))
		query += fmt.Sprintf(` AND doc->>'processed' = $%d`, len(args))
	}
	if filter.Provider != "" {
		args = append(args, filter.Provider)
		query += fmt.Sprintf(` AND doc->>'provider' = $%d`, len(args))
	}
	query += ` ORDER BY created_at`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Skip > 0 {
		args = append(args, filter.Skip)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := s.col.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list emails: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var emails []domain.Email
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("%w: scan email row: %v", domain.ErrPersistence, err)
		}
		var email domain.Email
		if err := json.Unmarshal(data, &email); err != nil {
			return nil, fmt.Errorf("%w: decode email %s: %v", domain.ErrPersistence, id, err)
		}
		email.ID = id
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (s *EmailStore) Create(ctx context.Context, email *domain.Email) (string, error) {
	id, err := s.col.insert(ctx, email)
	if err != nil {
		return "", err
	}
	email.ID = id
	return id, nil
}

func (s *EmailStore) MarkProcessed(ctx context.Context, id string) error {
	tag, err := s.col.db.Exec(ctx,
		`UPDATE documents
		 SET doc = jsonb_set(doc, '{processed}', 'true'), revision = revision + 1, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		collectionEmails, id,
	)
	if err != nil {
		return fmt.Errorf("%w: mark email %s processed: %v", domain.ErrPersistence, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: email %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *EmailStore) Delete(ctx context.Context, id string) error {
	return s.col.delete(ctx, id)
}

// ProposalStore persists proposal aggregates as documents with
// revision-checked updates.
type ProposalStore struct {
	col collection
}

func NewProposalStore(db *PostgresDB) *ProposalStore {
	return &ProposalStore{col: collection{db: db, name: collectionProposals}}
}

func (s *ProposalStore) FindByID(ctx context.Context, id string) (*domain.Proposal, error) {
	var proposal domain.Proposal
	revision, err := s.col.get(ctx, id, &proposal)
	if err != nil {
		return nil, err
	}
	proposal.ID = id
	proposal.Revision = revision
	return &proposal, nil
}

func (s *ProposalStore) FindByEmailID(ctx context.Context, emailID string) (*domain.Proposal, error) {
	var proposal domain.Proposal
	id, revision, err := s.col.getWhere(ctx, `doc->>'email_id' = $2`, emailID, &proposal)
	if err != nil {
		return nil, err
	}
	proposal.ID = id
	proposal.Revision = revision
	return &proposal, nil
}

func (s *ProposalStore) FindAll(ctx context.Context, skip, limit int) ([]domain.Proposal, error) {
	query := `SELECT id, doc, revision FROM documents WHERE collection = $1 ORDER BY created_at`
	args := []any{collectionProposals}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if skip > 0 {
		args = append(args, skip)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := s.col.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list proposals: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		var id string
		var data []byte
		var revision int64
		if err := rows.Scan(&id, &data, &revision); err != nil {
			return nil, fmt.Errorf("%w: scan proposal row: %v", domain.ErrPersistence, err)
		}
		var proposal domain.Proposal
		if err := json.Unmarshal(data, &proposal); err != nil {
			return nil, fmt.Errorf("%w: decode proposal %s: %v", domain.ErrPersistence, id, err)
		}
		proposal.ID = id
		proposal.Revision = revision
		proposals = append(proposals, proposal)
	}
	return proposals, rows.Err()
}

func (s *ProposalStore) Create(ctx context.Context, proposal *domain.Proposal) (string, error) {
	id, err := s.col.insert(ctx, proposal)
	if err != nil {
		return "", err
	}
	proposal.ID = id
	proposal.Revision = 1
	return id, nil
}

func (s *ProposalStore) Update(ctx context.Context, proposal *domain.Proposal) error {
	if err := s.col.update(ctx, proposal.ID, proposal.Revision, proposal); err != nil {
		return err
	}
	proposal.Revision++
	return nil
}

func (s *ProposalStore) Delete(ctx context.Context, id string) error {
	return s.col.delete(ctx, id)
}

// SentEmailStore records delivery audit rows.
type SentEmailStore struct {
	col collection
}

func NewSentEmailStore(db *PostgresDB) *SentEmailStore {
	return &SentEmailStore{col: collection{db: db, name: collectionSentEmails}}
}

func (s *SentEmailStore) Create(ctx context.Context, record *domain.SentEmailRecord) (string, error) {
	id, err := s.col.insert(ctx, record)
	if err != nil {
		return "", err
	}
	record.ID = id
	return id, nil
}

func (s *SentEmailStore) FindByProposalID(ctx context.Context, proposalID string) ([]domain.SentEmailRecord, error) {
	rows, err := s.col.db.Query(ctx,
		`SELECT id, doc FROM documents
		 WHERE collection = $1 AND doc->>'proposal_id' = $2
		 ORDER BY created_at`,
		collectionSentEmails, proposalID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list sent emails: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var records []domain.SentEmailRecord
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("%w: scan sent email row: %v", domain.ErrPersistence, err)
		}
		var record domain.SentEmailRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("%w: decode sent email %s: %v", domain.ErrPersistence, id, err)
		}
		record.ID = id
		records = append(records, record)
	}
	return records, rows.Err()
}
