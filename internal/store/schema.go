package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS contacts (
    contact_id           INTEGER PRIMARY KEY,
    position             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    phone                TEXT,
    email                TEXT,
    address              TEXT,
    status               TEXT NOT NULL,
    price                TEXT
);

CREATE TABLE IF NOT EXISTS contact_tags (
    contact_id           INTEGER NOT NULL REFERENCES contacts(contact_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    tag                  TEXT NOT NULL,
    PRIMARY KEY (contact_id, tag)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    imported_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);
CREATE INDEX IF NOT EXISTS idx_contact_tags_tag ON contact_tags(tag);
`
