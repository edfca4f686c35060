package database

import (
	"context"
	"fmt"
)

// schemaStatements creates the enums and tables of the booking back office.
// Content tables (blog, gallery, listings) are owned by the CMS screens and only created here.
var schemaStatements = []string{
	`DO $$ BEGIN
		CREATE TYPE job_status AS ENUM (
			'pending', 'quoted', 'accepted', 'in_progress', 'completed', 'cancelled',
			'invoice_sent', 'invoice_paid'
		);
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,

	`DO $$ BEGIN
		CREATE TYPE service_type AS ENUM (
			'photography', 'floor_plans', 'virtual_tour', 'aerial_photography', 'appraisal'
		);
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		client_name TEXT NOT NULL,
		client_email TEXT NOT NULL,
		client_phone TEXT NOT NULL DEFAULT '',
		property_address TEXT NOT NULL,
		service_type service_type NOT NULL,
		status job_status NOT NULL DEFAULT 'pending',
		quoted_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		final_amount NUMERIC(10,2),
		scheduled_date TIMESTAMPTZ,
		completed_date TIMESTAMPTZ,
		referral_source TEXT NOT NULL DEFAULT '',
		property_data TEXT NOT NULL DEFAULT '',
		calendar_event_id TEXT NOT NULL DEFAULT '',
		idempotency_key TEXT UNIQUE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at)`,

	`CREATE TABLE IF NOT EXISTS service_pricing (
		id BIGSERIAL PRIMARY KEY,
		service_id TEXT NOT NULL,
		tier_name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (service_id, tier_name)
	)`,

	`CREATE TABLE IF NOT EXISTS discount_codes (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL,
		discount_type TEXT NOT NULL CHECK (discount_type IN ('percentage', 'flat')),
		discount_value NUMERIC(10,2) NOT NULL CHECK (discount_value >= 0),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_discount_codes_code ON discount_codes (UPPER(code))`,

	`CREATE TABLE IF NOT EXISTS rate_limits (
		function_name TEXT NOT NULL,
		identifier TEXT NOT NULL,
		window_start TIMESTAMPTZ NOT NULL,
		request_count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (function_name, identifier)
	)`,

	`CREATE TABLE IF NOT EXISTS admin_settings (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS blog_posts (
		id UUID PRIMARY KEY,
		author_id UUID REFERENCES profiles(id),
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		cover_image_url TEXT NOT NULL DEFAULT '',
		read_time_minutes INTEGER NOT NULL DEFAULT 1,
		published BOOLEAN NOT NULL DEFAULT FALSE,
		published_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS gallery_collections (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		published BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS gallery_images (
		id UUID PRIMARY KEY,
		collection_id UUID NOT NULL REFERENCES gallery_collections(id) ON DELETE CASCADE,
		image_url TEXT NOT NULL,
		caption TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS property_listings (
		id UUID PRIMARY KEY,
		address TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip TEXT NOT NULL DEFAULT '',
		price NUMERIC(12,2),
		bedrooms INTEGER,
		bathrooms NUMERIC(3,1),
		square_footage INTEGER,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema statement by statement. Every statement is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
