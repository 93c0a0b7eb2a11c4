// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RhymeRecord is the item kept in the rhyme table for a single word.
//
// Word is the normalized lookup key (lower-cased, trimmed, single token).
// Rhymes may be stored either as a string set or as a list of strings.
type RhymeRecord struct {
	Word   string   `dynamodbav:"word" json:"word"`
	Rhymes []string `dynamodbav:"rhymes" json:"rhymes"`
}
