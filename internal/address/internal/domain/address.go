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

package domain

type Address struct {
	ID        int64
	UserID    int64
	Consignee string
	// 0 女 1 男
	Sex          uint8
	Phone        string
	ProvinceCode string
	ProvinceName string
	CityCode     string
	CityName     string
	DistrictCode string
	DistrictName string
	Detail       string
	Label        string
	IsDefault    bool
}

// FullAddress 下单时保存到订单上的地址快照
func (a Address) FullAddress() string {
	return a.ProvinceName + a.CityName + a.DistrictName + a.Detail
}
