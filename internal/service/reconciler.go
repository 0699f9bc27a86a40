// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"slices"

	"github.com/soletraderai/teachy-sub001/models"
)

// Reconcile merges the local records with the remote snapshot.
//
// Records are matched by ID. For a record present on both sides the remote
// copy wins unless the local copy has a strictly newer CreatedAt. Records
// present on only one side are kept. The result is ordered by CreatedAt
// descending, then by ID ascending.
//
// Reconcile is pure: it never mutates its inputs and Reconcile(Reconcile(l,
// r), r) equals Reconcile(l, r).
func Reconcile(local, remote []models.Session) []models.Session {
	byID := make(map[string]models.Session, len(local)+len(remote))
	for _, s := range local {
		byID[s.ID] = s.Clone()
	}

	for _, r := range remote {
		if l, ok := byID[r.ID]; ok && l.CreatedAt > r.CreatedAt {
			if l.RemoteID == "" {
				l.RemoteID = r.RemoteID
				byID[r.ID] = l
			}
			continue
		}
		byID[r.ID] = r.Clone()
	}

	merged := make([]models.Session, 0, len(byID))
	for _, s := range byID {
		merged = append(merged, s)
	}
	slices.SortFunc(merged, func(a, b models.Session) int {
		if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return merged
}
