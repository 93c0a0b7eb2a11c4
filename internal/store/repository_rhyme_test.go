package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemGetter struct {
	items  map[string]map[string]types.AttributeValue
	err    error
	inputs []*dynamodb.GetItemInput
}

func (f *fakeItemGetter) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	key := in.Key["word"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func rhymeItems() map[string]map[string]types.AttributeValue {
	return map[string]map[string]types.AttributeValue{
		"cat": {
			"word": &types.AttributeValueMemberS{Value: "cat"},
			"rhymes": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: "hat"},
				&types.AttributeValueMemberS{Value: "bat"},
			}},
		},
		"day": {
			"word":   &types.AttributeValueMemberS{Value: "day"},
			"rhymes": &types.AttributeValueMemberSS{Value: []string{"say", "way"}},
		},
		"orange": {
			"word": &types.AttributeValueMemberS{Value: "orange"},
		},
	}
}

func TestRhymeRepository_GetRhymes(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		want    []string
		wantErr error
	}{
		{name: "list of strings", word: "cat", want: []string{"hat", "bat"}},
		{name: "string set", word: "day", want: []string{"say", "way"}},
		{name: "present without rhymes", word: "orange", want: []string{}},
		{name: "missing item", word: "zzqq", wantErr: ErrRhymeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getter := &fakeItemGetter{items: rhymeItems()}
			repo := NewRhymeRepository(getter, "Rhyme", "word", logger.Nop())

			record, err := repo.GetRhymes(context.Background(), tt.word)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.word, record.Word)
			assert.Equal(t, tt.want, record.Rhymes)

			require.Len(t, getter.inputs, 1)
			assert.Equal(t, "Rhyme", *getter.inputs[0].TableName)
		})
	}
}

func TestRhymeRepository_TransportErrorIsNotNotFound(t *testing.T) {
	errs := []error{
		errors.New("dial tcp: connection refused"),
		&smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "table missing"},
		&smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException"},
	}

	for _, e := range errs {
		repo := NewRhymeRepository(&fakeItemGetter{err: e}, "Rhyme", "word", logger.Nop())
		_, err := repo.GetRhymes(context.Background(), "cat")
		assert.ErrorIs(t, err, ErrKeyValueStore)
		assert.NotErrorIs(t, err, ErrRhymeNotFound)
	}
}

func TestRhymeRepository_UndecodableItem(t *testing.T) {
	getter := &fakeItemGetter{items: map[string]map[string]types.AttributeValue{
		"cat": {"rhymes": &types.AttributeValueMemberN{Value: "3"}},
	}}
	repo := NewRhymeRepository(getter, "Rhyme", "word", logger.Nop())

	_, err := repo.GetRhymes(context.Background(), "cat")
	assert.ErrorIs(t, err, ErrKeyValueStore)
}
