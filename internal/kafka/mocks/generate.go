//go:generate mockgen -source=../consumer.go -destination=./mock_consumer.go -package=mocks
//go:generate mockgen -source=../gateway.go  -destination=./mock_gateway.go  -package=mocks

package mocks
