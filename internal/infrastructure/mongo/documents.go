package mongo

import "time"

// BusinessDocument は MongoDB 上での事業者スキーマを Go 構造体として表現したもの。
// _id にはデータセットの数値 ID をそのまま使う。
type BusinessDocument struct {
	ID          int                     `bson:"_id"`
	Position    int                     `bson:"position"`
	Name        string                  `bson:"name"`
	Category    string                  `bson:"category"`
	Location    string                  `bson:"location,omitempty"`
	Price       int                     `bson:"price"`
	Services    []string                `bson:"services,omitempty"`
	Vibe        string                  `bson:"vibe,omitempty"`
	Description string                  `bson:"description,omitempty"`
	Rating      float64                 `bson:"rating"`
	Image       string                  `bson:"image,omitempty"`
	Details     BusinessDetailsDocument `bson:"details,omitempty"`
	SeededAt    *time.Time              `bson:"seededAt,omitempty"`
}

// BusinessDetailsDocument は一覧以外で使う任意属性の埋め込みドキュメント。
type BusinessDetailsDocument struct {
	Type           string   `bson:"type,omitempty"`
	Reviews        int      `bson:"reviews,omitempty"`
	Amenities      []string `bson:"amenities,omitempty"`
	Hours          string   `bson:"hours,omitempty"`
	MonthlyPrice   int      `bson:"monthlyPrice,omitempty"`
	JoinFee        int      `bson:"joinFee,omitempty"`
	MemberCapacity int      `bson:"memberCapacity,omitempty"`
}
