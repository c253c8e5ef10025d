package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"structify/internal/ent"
	entrecord "structify/internal/ent/extractionrecord"
)

// EntCacheRepository persists extraction records through the ent
// client. Appends are plain inserts; the newest-row-wins read keeps
// the table append-only.
type EntCacheRepository struct {
	client *ent.Client
}

func NewEntCacheRepository(client *ent.Client) *EntCacheRepository {
	return &EntCacheRepository{client: client}
}

func (r *EntCacheRepository) Append(ctx context.Context, rec *Record) (*Record, error) {
	specs, err := json.Marshal(rec.FieldSpecs)
	if err != nil {
		return nil, fmt.Errorf("marshal field specs: %w", err)
	}
	row, err := r.client.ExtractionRecord.Create().
		SetCacheKey(rec.CacheKey).
		SetOwnerID(rec.OwnerID).
		SetPrompt(rec.Prompt).
		SetFieldSpecs(specs).
		SetSchemaDoc(rec.SchemaDoc).
		SetAssetDigest(rec.AssetDigest).
		SetRawOutput(rec.RawOutput).
		SetResult(rec.Result).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append extraction record: %w", err)
	}
	return fromEntRecord(row)
}

func (r *EntCacheRepository) LatestByKey(ctx context.Context, key string) (*Record, error) {
	row, err := r.client.ExtractionRecord.Query().
		Where(entrecord.CacheKey(key)).
		Order(ent.Desc(entrecord.FieldCreatedAt), ent.Desc(entrecord.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("query extraction record: %w", err)
	}
	return fromEntRecord(row)
}

func fromEntRecord(row *ent.ExtractionRecord) (*Record, error) {
	var specs []FieldSpec
	if len(row.FieldSpecs) > 0 {
		if err := json.Unmarshal(row.FieldSpecs, &specs); err != nil {
			return nil, fmt.Errorf("unmarshal field specs: %w", err)
		}
	}
	return &Record{
		ID:          row.ID,
		CacheKey:    row.CacheKey,
		OwnerID:     row.OwnerID,
		Prompt:      row.Prompt,
		FieldSpecs:  specs,
		SchemaDoc:   row.SchemaDoc,
		AssetDigest: row.AssetDigest,
		RawOutput:   row.RawOutput,
		Result:      row.Result,
		CreatedAt:   row.CreatedAt,
	}, nil
}
