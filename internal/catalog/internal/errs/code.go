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

package errs

var (
	SystemError           = ErrorCode{Code: 512001, Msg: "系统错误"}
	DishOnSale            = ErrorCode{Code: 512002, Msg: "起售中的菜品不能删除"}
	DishInSetmeal         = ErrorCode{Code: 512003, Msg: "当前菜品关联了套餐,不能删除"}
	SetmealOnSale         = ErrorCode{Code: 512004, Msg: "起售中的套餐不能删除"}
	SetmealHasOffSaleDish = ErrorCode{Code: 512005, Msg: "套餐内包含未启售菜品,无法启售"}
	DuplicateName         = ErrorCode{Code: 512006, Msg: "名称已存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
