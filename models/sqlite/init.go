package sqlite

import (
	"reflect"

	"github.com/haven1-network/pricer/types"
)

var TAccount = reflect.TypeOf(&types.Account{})
var TSqliteAccount = reflect.TypeOf(&sqliteAccount{})

var TRecord = reflect.TypeOf(&types.Record{})
var TSqliteRecord = reflect.TypeOf(&sqliteRecord{})

var TFeeEvent = reflect.TypeOf(&types.FeeEvent{})
var TSqliteFeeEvent = reflect.TypeOf(&sqliteFeeEvent{})
