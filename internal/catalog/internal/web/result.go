// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeout/internal/catalog/internal/errs"
	"github.com/ecodeclub/takeout/internal/catalog/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrDishOnSale):
		code = errs.DishOnSale
	case errors.Is(err, service.ErrDishInSetmeal):
		code = errs.DishInSetmeal
	case errors.Is(err, service.ErrSetmealOnSale):
		code = errs.SetmealOnSale
	case errors.Is(err, service.ErrSetmealHasOffSaleDish):
		code = errs.SetmealHasOffSaleDish
	case errors.Is(err, service.ErrDuplicateName):
		code = errs.DuplicateName
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
