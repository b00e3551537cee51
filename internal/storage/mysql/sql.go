package mysql

const upsertRecordSQL = `
INSERT INTO travel_records (destination, record)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  record     = VALUES(record),
  updated_at = CURRENT_TIMESTAMP
`

const getRecordSQL = `
SELECT record
FROM travel_records
WHERE destination = ?
`

const insertGuideSQL = `
INSERT INTO guides (destination, path)
VALUES (?, ?)
`

// Newest first across all destinations; served by idx_guides_time on
// (generated_at), whose entries carry the primary key as the tiebreaker.
const listGuidesSQL = `
SELECT id, destination, path, generated_at
FROM guides
ORDER BY generated_at DESC, id DESC
LIMIT ?
`
