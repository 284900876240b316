package store

import (
	"context"
	"strconv"
	"strings"

	"catalog-app/internal/domain/catalog"

	"github.com/charmbracelet/log"
)

// ReconcileReport lists what a sweep changed or could not repair.
type ReconcileReport struct {
	RemovedArtifacts []string `json:"removed_artifacts"`
	MissingArtifacts []string `json:"missing_artifacts"`
}

// ReconcileImages compares image artifacts to the rows that should own them.
// The artifact store is not transactional, so a crash between a commit and
// the matching artifact delete/rename can leave strays; this sweep is the
// backstop. Orphan artifacts are deleted, rows whose artifact is missing are
// reported.
func (s *Store) ReconcileImages(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{
		RemovedArtifacts: []string{},
		MissingArtifacts: []string{},
	}

	var codes []string
	if err := s.db.WithContext(ctx).Model(&catalog.Platform{}).Pluck("code", &codes).Error; err != nil {
		return nil, classify(err)
	}
	if err := s.sweep(report, "platforms/", keySet(codes, PlatformImageKey), true); err != nil {
		return nil, err
	}

	var ids []uint
	if err := s.db.WithContext(ctx).Model(&catalog.VideoGame{}).Pluck("id", &ids).Error; err != nil {
		return nil, classify(err)
	}
	idKeys := make([]string, len(ids))
	for i, id := range ids {
		idKeys[i] = strconv.FormatUint(uint64(id), 10)
	}
	// video game images are optional, so only orphan artifacts are swept
	if err := s.sweep(report, "videogames/", keySet(idKeys, func(k string) string { return "videogames/" + k }), false); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *Store) sweep(report *ReconcileReport, prefix string, want map[string]bool, required bool) error {
	stored, err := s.images.List(prefix)
	if err != nil {
		log.Error("image sweep failed", "prefix", prefix, "err", err)
		return &InternalError{Err: err}
	}
	have := make(map[string]bool, len(stored))
	for _, key := range stored {
		have[key] = true
		if !want[key] {
			if err := s.images.Delete(key); err != nil {
				log.Warn("orphan artifact could not be removed", "key", key, "err", err)
				continue
			}
			report.RemovedArtifacts = append(report.RemovedArtifacts, key)
		}
	}
	if required {
		for key := range want {
			if !have[key] {
				report.MissingArtifacts = append(report.MissingArtifacts, key)
			}
		}
	}
	return nil
}

func keySet(keys []string, toKey func(string) string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[toKey(strings.TrimSpace(k))] = true
	}
	return m
}
