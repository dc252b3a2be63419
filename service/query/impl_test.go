package query

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/database/mongoclient"
	"github.com/x-xyz/leadauction/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
	// a replica set is needed for transactions, e.g. mongodb://localhost:28000/?replicaSet=rs0
	mongoURIEnv = "TEST_MONGO_URI"
)

type Dummy struct {
	Dummy  string `json:"dummy" bson:"dummy"`
	Update string `json:"updatekey" bson:"updatekey"`
	Status string `json:"status" bson:"status"`
	Count  int    `json:"count" bson:"count"`
}

type querySuite struct {
	suite.Suite
	im       *impl
	mongoURI string
}

func (q *querySuite) SetupSuite() {
	q.mongoURI = os.Getenv(mongoURIEnv)
	if q.mongoURI == "" {
		q.T().Skipf("%s not set", mongoURIEnv)
	}
	q.im = New(mongoclient.MustConnectMongoClient(q.mongoURI, "admin", dbName, false, true, 1), false).(*impl)
}

func (q *querySuite) SetupTest() {
	q.Require().NoError(q.im.collection(mockTable).Drop(mockCTX))
	q.Require().NoError(q.im.CreateIndexes(mockCTX, mockTable, []Index{
		{Name: "dummy_unique", Keys: bson.D{{Key: "dummy", Value: 1}}, Unique: true},
	}))
}

func (q *querySuite) TestInsertAndFindOne() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "a", Update: "1"}))

	result := &Dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("1", result.Update)

	err := q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "missing"}, result)
	q.Equal(ErrNotFound, err)
}

func (q *querySuite) TestInsertShouldFailWithDuplicateKey() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "a"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "a"}))
	q.NoError(q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "b"}))
}

func (q *querySuite) TestUpsert() {
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, Dummy{Dummy: "a", Update: "1"}))
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, Dummy{Dummy: "a", Update: "2"}))

	cnt, err := q.im.Count(mockCTX, mockTable, bson.M{"dummy": "a"})
	q.Require().NoError(err)
	q.Equal(1, cnt)

	result := &Dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("2", result.Update)
}

func (q *querySuite) TestSearchNSorts() {
	for _, d := range []Dummy{{Dummy: "a", Count: 2}, {Dummy: "b", Count: 1}, {Dummy: "c", Count: 2}} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, d))
	}

	results := []Dummy{}
	q.Require().NoError(q.im.SearchNSorts(mockCTX, mockTable, 0, 10, []string{"-count", "dummy"}, bson.M{}, &results))
	q.Require().Len(results, 3)
	q.Equal([]string{"a", "c", "b"}, []string{results[0].Dummy, results[1].Dummy, results[2].Dummy})

	results = []Dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 1, 1, "dummy", bson.M{}, &results))
	q.Require().Len(results, 1)
	q.Equal("b", results[0].Dummy)
}

func (q *querySuite) TestPatch() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "a", Update: "1"}))

	q.Require().NoError(q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "2"}))
	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "missing"}, bson.M{"updatekey": "2"}))

	result := &Dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("2", result.Update)
}

func (q *querySuite) TestUpdateGuardedByStatus() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "a", Status: "OPEN"}))
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{Dummy: "b", Status: "OPEN"}))

	selector := bson.M{"dummy": "a", "status": "OPEN"}
	update := bson.M{"$set": bson.M{"status": "CLOSED"}}

	matched, err := q.im.Update(mockCTX, mockTable, selector, update, false)
	q.Require().NoError(err)
	q.Equal(int64(1), matched)

	// the guard no longer matches
	matched, err = q.im.Update(mockCTX, mockTable, selector, update, false)
	q.Require().NoError(err)
	q.Equal(int64(0), matched)

	matched, err = q.im.Update(mockCTX, mockTable, bson.M{"status": "OPEN"}, bson.M{"$inc": bson.M{"count": 1}}, true)
	q.Require().NoError(err)
	q.Equal(int64(1), matched)
}

func (q *querySuite) TestRunWithTransaction() {
	run := func(c ctx.Ctx) error {
		q.Require().NoError(q.im.Insert(c, mockTable, Dummy{Dummy: "test-value-1"}))
		q.Require().NoError(q.im.Insert(c, mockTable, Dummy{Dummy: "test-value-2"}))
		return errors.New("error")
	}

	// test fail
	q.Require().Error(q.im.RunWithTransaction(mockCTX, run))

	result := &Dummy{}
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-1"}, result))
	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-2"}, result))

	run = func(c ctx.Ctx) error {
		q.Require().NoError(q.im.Insert(c, mockTable, Dummy{Dummy: "test-value-1"}))
		q.Require().NoError(q.im.Insert(c, mockTable, Dummy{Dummy: "test-value-2"}))
		return nil
	}

	// test success
	q.Require().NoError(q.im.RunWithTransaction(mockCTX, run))

	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-1"}, result))
	q.Require().Equal("test-value-1", result.Dummy)
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "test-value-2"}, result))
	q.Require().Equal("test-value-2", result.Dummy)
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(querySuite))
}

func TestGetSortOption(t *testing.T) {
	im := &impl{}
	got := im.getSortOption("-effectiveBid", "", "createdAt")
	want := bson.D{{Key: "effectiveBid", Value: -1}, {Key: "createdAt", Value: 1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}
