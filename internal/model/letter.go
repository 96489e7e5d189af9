package model

// Letter はアラビア文字カタログの1エントリを表します。
// 28文字の固定リファレンスデータで、マイグレーション時に一度だけシードされます。
type Letter struct {
	LetterID   int    `gorm:"primaryKey;column:id" json:"letter_id"`
	Ar         string `gorm:"column:ar;unique;not null" json:"ar"`
	En         string `gorm:"column:en;not null" json:"en"`
	OrderIndex int    `gorm:"column:order_index;not null" json:"order_index"`
}

func (Letter) TableName() string {
	return "letters"
}

// CanonicalLetters は正準28文字のカタログを返します。
// 並び順はアラビア文字の標準的な字母順 (アリフ〜ヤー) です。
func CanonicalLetters() []Letter {
	return []Letter{
		{LetterID: 1, Ar: "ا", En: "alef", OrderIndex: 1},
		{LetterID: 2, Ar: "ب", En: "ba", OrderIndex: 2},
		{LetterID: 3, Ar: "ت", En: "ta", OrderIndex: 3},
		{LetterID: 4, Ar: "ث", En: "tha", OrderIndex: 4},
		{LetterID: 5, Ar: "ج", En: "jeem", OrderIndex: 5},
		{LetterID: 6, Ar: "ح", En: "hah", OrderIndex: 6},
		{LetterID: 7, Ar: "خ", En: "khah", OrderIndex: 7},
		{LetterID: 8, Ar: "د", En: "dal", OrderIndex: 8},
		{LetterID: 9, Ar: "ذ", En: "thal", OrderIndex: 9},
		{LetterID: 10, Ar: "ر", En: "ra", OrderIndex: 10},
		{LetterID: 11, Ar: "ز", En: "zain", OrderIndex: 11},
		{LetterID: 12, Ar: "س", En: "seen", OrderIndex: 12},
		{LetterID: 13, Ar: "ش", En: "sheen", OrderIndex: 13},
		{LetterID: 14, Ar: "ص", En: "sad", OrderIndex: 14},
		{LetterID: 15, Ar: "ض", En: "dad", OrderIndex: 15},
		{LetterID: 16, Ar: "ط", En: "tah", OrderIndex: 16},
		{LetterID: 17, Ar: "ظ", En: "zah", OrderIndex: 17},
		{LetterID: 18, Ar: "ع", En: "ain", OrderIndex: 18},
		{LetterID: 19, Ar: "غ", En: "ghain", OrderIndex: 19},
		{LetterID: 20, Ar: "ف", En: "fa", OrderIndex: 20},
		{LetterID: 21, Ar: "ق", En: "qaf", OrderIndex: 21},
		{LetterID: 22, Ar: "ك", En: "kaf", OrderIndex: 22},
		{LetterID: 23, Ar: "ل", En: "lam", OrderIndex: 23},
		{LetterID: 24, Ar: "م", En: "meem", OrderIndex: 24},
		{LetterID: 25, Ar: "ن", En: "noon", OrderIndex: 25},
		{LetterID: 26, Ar: "ه", En: "heh", OrderIndex: 26},
		{LetterID: 27, Ar: "و", En: "waw", OrderIndex: 27},
		{LetterID: 28, Ar: "ي", En: "ya", OrderIndex: 28},
	}
}
