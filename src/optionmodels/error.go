package optionmodels

import "fmt"

var MissingVolatilityErr = fmt.Errorf("no implied volatility supplied for contract symbol")
var InvalidOptionTypeErr = fmt.Errorf("invalid option type")
var InvalidPositionSideErr = fmt.Errorf("invalid position side")
var InvalidExerciseStyleErr = fmt.Errorf("invalid exercise style")
var NonPositiveStrikeErr = fmt.Errorf("strike must be greater than zero")
var NonPositiveQuantityErr = fmt.Errorf("quantity must be greater than zero")
var NonPositiveMultiplierErr = fmt.Errorf("multiplier must be greater than zero")
var EmptyPriceRangeErr = fmt.Errorf("price range must contain at least one price")
