package benchmark

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/prototag"
	"github.com/anirudhraja/prototag/codec"
)

// Benchmark messages: a small flat record and a larger one with nested,
// repeated and map fields.

type Post struct {
	ID    int64
	Title string
	Likes int32
}

type User struct {
	ID     int64
	Name   string
	Email  string
	Scores []int32
	Labels map[string]string
	Latest Post
}

var (
	simpleUser = User{
		ID:    123,
		Name:  "John Doe",
		Email: "john.doe@example.com",
	}

	complexUser = User{
		ID:     123,
		Name:   "John Doe",
		Email:  "john.doe@example.com",
		Scores: []int32{1, 2, 3, 150, 30000, -5},
		Labels: map[string]string{
			"team":   "storage",
			"region": "eu-west-1",
			"tier":   "premium",
		},
		Latest: Post{ID: 9000, Title: "protobuf without codegen", Likes: 42},
	}

	simplePayload  []byte
	complexPayload []byte
)

func init() {
	prototag.Register(
		codec.NewField(1, "id", codec.Int64(0), func(p *Post) *int64 { return &p.ID }),
		codec.NewField(2, "title", codec.String(), func(p *Post) *string { return &p.Title }),
		codec.NewField(3, "likes", codec.Int32(0), func(p *Post) *int32 { return &p.Likes }),
	)
	prototag.Register(
		codec.NewField(1, "id", codec.Int64(0), func(u *User) *int64 { return &u.ID }),
		codec.NewField(2, "name", codec.String(), func(u *User) *string { return &u.Name }),
		codec.NewField(3, "email", codec.String(), func(u *User) *string { return &u.Email }),
		codec.NewField(4, "scores", codec.Repeated(codec.Int32(0)), func(u *User) *[]int32 { return &u.Scores }),
		codec.NewMapField(5, "labels", codec.String(), codec.String(), func(u *User) *map[string]string { return &u.Labels }),
		codec.NewField(6, "latest", codec.Nested[Post](), func(u *User) *Post { return &u.Latest }),
	)

	var err error
	if simplePayload, err = prototag.Marshal(&simpleUser); err != nil {
		panic("failed to build simple payload: " + err.Error())
	}
	if complexPayload, err = prototag.Marshal(&complexUser); err != nil {
		panic("failed to build complex payload: " + err.Error())
	}
}

func BenchmarkMarshalSimple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := prototag.Marshal(&simpleUser); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := prototag.Marshal(&complexUser); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalSimple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var u User
		if err := prototag.Unmarshal(simplePayload, &u); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var u User
		if err := prototag.Unmarshal(complexPayload, &u); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSizeComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := prototag.Size(&complexUser); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkProtowireBaseline hand-assembles the simple payload with the
// canonical low-level appenders, as a floor to compare against.
func BenchmarkProtowireBaseline(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var buf []byte
		buf = protowire.AppendTag(buf, 1, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(simpleUser.ID))
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendString(buf, simpleUser.Name)
		buf = protowire.AppendTag(buf, 3, protowire.BytesType)
		buf = protowire.AppendString(buf, simpleUser.Email)
		_ = buf
	}
}
