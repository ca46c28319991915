package idgen

import (
	"log"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// GenerateCode returns a reference code with a readable prefix, used for
// batch group references and finished-product QR codes.
func GenerateCode(prefix string) string {
	return prefix + "-" + strconv.FormatInt(node.Generate().Int64(), 10)
}
