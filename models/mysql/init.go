package mysql

import (
	"reflect"

	"github.com/haven1-network/pricer/types"
)

var TAccount = reflect.TypeOf(&types.Account{})
var TMysqlAccount = reflect.TypeOf(&mysqlAccount{})

var TRecord = reflect.TypeOf(&types.Record{})
var TMysqlRecord = reflect.TypeOf(&mysqlRecord{})

var TFeeEvent = reflect.TypeOf(&types.FeeEvent{})
var TMysqlFeeEvent = reflect.TypeOf(&mysqlFeeEvent{})
