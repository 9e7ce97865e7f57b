package syntax

// misspellings maps common keyword typos to their corrections. The table is
// read-only after init and shared by every validation call.
var misspellings = map[string]string{
	"SELCT":   "SELECT",
	"SELEC":   "SELECT",
	"SLECT":   "SELECT",
	"FORM":    "FROM",
	"FRM":     "FROM",
	"WHER":    "WHERE",
	"WERE":    "WHERE",
	"GROUPBY": "GROUP BY",
	"ORDERBY": "ORDER BY",
	"INSER":   "INSERT",
	"UPDAT":   "UPDATE",
	"DELET":   "DELETE",
	"JOIM":    "JOIN",
	"JION":    "JOIN",
	"HAVNG":   "HAVING",
	"DISTINC": "DISTINCT",
	"LIMT":    "LIMIT",
	"UNOIN":   "UNION",
	"BETWEN":  "BETWEEN",
}
