package data

type Repository[T interface{}, I interface{}] interface {
	Get(accountId string, itemId string) (T, error)
	Create(accountId string, input I) (T, error)
	CreateWithItemId(accountId string, input I, itemId string) (T, error)
	Update(accountId string, itemId string, input I) (T, error)
	List(accountId string, params QueryParams) (QueryResults[T], error)
	Delete(accountId string, itemId string) error
}
