package relay

//go:generate mockgen --source datastore/repository.go --destination mocks/repository.go -package mocks
//go:generate mockgen --source net/dispatcher.go --destination mocks/dispatcher.go -package mocks
