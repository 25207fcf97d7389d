package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/mozillazg/go-pinyin"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

var departments = []string{"客服部", "运营部", "技术部", "人事部"}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateCodeFromChineseName 用姓名拼音加随机数字生成员工编号
func GenerateCodeFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	code := ""

	for _, py := range pinyinArray {
		length := rand.Intn(len(py)) + 1
		code += py[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		code += string(digits[rand.Intn(len(digits))])
	}

	return code
}

func GenerateRandomEmployee(password string) (*domain.Employee, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	fullName := GenerateRandomChineseName()
	code := GenerateCodeFromChineseName(fullName)

	return &domain.Employee{
		Code:         code,
		FullName:     fullName,
		Department:   departments[rand.Intn(len(departments))],
		Email:        fmt.Sprintf("%s@example.com", code),
		PasswordHash: string(passwordHash),
		Role:         domain.RoleStaff,
	}, nil
}

var shiftParts = []domain.ShiftPart{
	domain.ShiftPartMorning,
	domain.ShiftPartAfternoon,
	domain.ShiftPartFull,
}

// GenerateRandomAssignment 在指定月份内随机生成一条排班登记
func GenerateRandomAssignment(shiftID int64, month int, year int) *domain.ScheduleAssignment {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	day := rand.Intn(lastDay.Day()) + 1

	return &domain.ScheduleAssignment{
		ShiftID:   shiftID,
		Date:      time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		ShiftPart: shiftParts[rand.Intn(len(shiftParts))],
	}
}
