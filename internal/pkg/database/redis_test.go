package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("tracking:snapshot", "payload", 10*time.Second).SetVal("OK")

	err := client.Set(context.Background(), "tracking:snapshot", "payload", 10*time.Second)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("tracking:snapshot", "payload", 0).SetErr(errors.New("READONLY"))

	err := client.Set(context.Background(), "tracking:snapshot", "payload", 0)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("tracking:snapshot").SetVal("payload")
	val, err := client.Get(context.Background(), "tracking:snapshot")
	assert.NoError(t, err)
	assert.Equal(t, "payload", val)

	mock.ExpectGet("missing").RedisNil()
	_, err = client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, redis.Nil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("vehicles:geo", &redis.GeoLocation{
		Longitude: 79.8612,
		Latitude:  6.9271,
		Name:      "NB1985",
	}).SetVal(1)

	err := client.GeoAdd(context.Background(), "vehicles:geo", 79.8612, 6.9271, "NB1985")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	expected := []redis.GeoLocation{{Name: "NB1985", Longitude: 79.86, Latitude: 6.92, Dist: 0.4}}
	mock.ExpectGeoRadius("vehicles:geo", 79.8612, 6.9271, &redis.GeoRadiusQuery{
		Radius:    5,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Count:     10,
		Sort:      "ASC",
	}).SetVal(expected)

	result, err := client.GeoRadius(context.Background(), "vehicles:geo", 79.8612, 6.9271, 5, "km", 10)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetClient(t *testing.T) {
	db, _ := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	assert.Same(t, db, client.GetClient())
}
