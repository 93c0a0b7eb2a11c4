// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// rhymeRepository reads rhyme records with a single GetItem per lookup.
type rhymeRepository struct {
	client       DynamoDBItemGetter
	table        string
	keyAttribute string
	logger       *logger.Logger
}

// NewRhymeRepository constructs a [RhymeRepository] over table, keyed by
// keyAttribute.
func NewRhymeRepository(client DynamoDBItemGetter, table, keyAttribute string, logger *logger.Logger) RhymeRepository {
	logger.Debug().Str("table", table).Msg("creating rhyme repository")
	return &rhymeRepository{
		client:       client,
		table:        table,
		keyAttribute: keyAttribute,
		logger:       logger,
	}
}

// GetRhymes expects word to be normalized already.
func (r *rhymeRepository) GetRhymes(ctx context.Context, word string) (models.RhymeRecord, error) {
	log := logger.FromContext(ctx)

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			r.keyAttribute: &types.AttributeValueMemberS{Value: word},
		},
	})
	if err != nil {
		event := log.Err(err).Str("func", "*rhymeRepository.GetRhymes").Str("table", r.table)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			event = event.Str("code", apiErr.ErrorCode())
		}
		event.Msg("error getting rhyme item")
		return models.RhymeRecord{}, fmt.Errorf("%w: %w", ErrKeyValueStore, err)
	}

	if len(result.Item) == 0 {
		return models.RhymeRecord{}, ErrRhymeNotFound
	}

	var record models.RhymeRecord
	if err = attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		log.Err(err).Str("func", "*rhymeRepository.GetRhymes").Msg("error unmarshaling rhyme item")
		return models.RhymeRecord{}, fmt.Errorf("%w: unmarshaling rhyme item: %w", ErrKeyValueStore, err)
	}
	record.Word = word
	if record.Rhymes == nil {
		record.Rhymes = []string{}
	}

	return record, nil
}
