package customrecipes

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"github.com/rs/zerolog"
	"calvillo.me/recetas/internal/data"
)

// How many poll ticks pass between shard list refreshes. Resharding is
// rare; shards also get re-listed whenever none are left open.
const shardRefreshTicks = 30

// StreamWatcher turns the table's DynamoDB stream into per-namespace
// change signals. One goroutine per subscription polls every open shard
// from LATEST and fires when a record for the watched partition key shows
// up. Changes landing within one poll window coalesce into a single
// signal.
type StreamWatcher struct {
	Streams      *dynamodbstreams.Client
	StreamArn    string
	PollInterval time.Duration
	Logger       zerolog.Logger
}

func NewStreamWatcher(streamArn string, client *dynamodbstreams.Client, interval time.Duration, logger zerolog.Logger) *StreamWatcher {
	return &StreamWatcher{
		Streams:      client,
		StreamArn:    streamArn,
		PollInterval: interval,
		Logger:       logger,
	}
}

func (sw *StreamWatcher) Watch(pk string, changed func()) data.Unsubscribe {
	stop := make(chan struct{})
	go sw.poll(pk, changed, stop)
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
		})
	}
}

func (sw *StreamWatcher) openShards() map[string]string {
	iterators := make(map[string]string)
	var startShardId *string
	for {
		described, err := sw.Streams.DescribeStream(context.TODO(), &dynamodbstreams.DescribeStreamInput{
			StreamArn:             aws.String(sw.StreamArn),
			ExclusiveStartShardId: startShardId,
		})
		if err != nil {
			sw.Logger.Error().Err(err).Str("streamArn", sw.StreamArn).Msg("Failed to describe stream")
			return iterators
		}
		for _, shard := range described.StreamDescription.Shards {
			output, err := sw.Streams.GetShardIterator(context.TODO(), &dynamodbstreams.GetShardIteratorInput{
				StreamArn:         aws.String(sw.StreamArn),
				ShardId:           shard.ShardId,
				ShardIteratorType: streamtypes.ShardIteratorTypeLatest,
			})
			if err != nil {
				sw.Logger.Error().Err(err).Str("shardId", *shard.ShardId).Msg("Failed to open shard iterator")
				continue
			}
			iterators[*shard.ShardId] = *output.ShardIterator
		}
		startShardId = described.StreamDescription.LastEvaluatedShardId
		if startShardId == nil {
			return iterators
		}
	}
}

func _matchesKey(records []streamtypes.Record, pk string) bool {
	for _, record := range records {
		if record.Dynamodb == nil {
			continue
		}
		if sv, ok := record.Dynamodb.Keys["PK"].(*streamtypes.AttributeValueMemberS); ok {
			if sv.Value == pk {
				return true
			}
		}
	}
	return false
}

func (sw *StreamWatcher) poll(pk string, changed func(), stop <-chan struct{}) {
	iterators := sw.openShards()
	ticker := time.NewTicker(sw.PollInterval)
	defer ticker.Stop()
	ticks := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		ticks++
		if len(iterators) == 0 || ticks%shardRefreshTicks == 0 {
			refreshed := sw.openShards()
			for shardId, iterator := range refreshed {
				if _, ok := iterators[shardId]; !ok {
					iterators[shardId] = iterator
				}
			}
		}
		hit := false
		for shardId, iterator := range iterators {
			output, err := sw.Streams.GetRecords(context.TODO(), &dynamodbstreams.GetRecordsInput{
				ShardIterator: aws.String(iterator),
			})
			if err != nil {
				sw.Logger.Warn().Err(err).Str("shardId", shardId).Msg("Failed to read stream records")
				delete(iterators, shardId)
				continue
			}
			if _matchesKey(output.Records, pk) {
				hit = true
			}
			if output.NextShardIterator == nil {
				delete(iterators, shardId)
				continue
			}
			iterators[shardId] = *output.NextShardIterator
		}
		if hit {
			changed()
		}
	}
}
