package token

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

// TokenMarshaler converts a DynamoDB pagination key into an opaque token
// that is only usable by the account that received it.
type TokenMarshaler interface {
	Marshal(accountId string, lastKey map[string]types.AttributeValue) ([]byte, error)

	Unmarshal(accountId string, token []byte) (map[string]types.AttributeValue, error)
}
