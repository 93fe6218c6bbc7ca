package global

import (
	"outlet_review/config"
	"outlet_review/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Review_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Review_CollectionName struct {
	Suggestions  string // Tên collection cho suggestion ghép outlet
	Markets      string // Tên collection cho thị trường
	ReviewEvents string // Tên collection cho lịch sử thao tác review
}

// Các biến toàn cục
var Validate *validator.Validate                                                       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                      // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                         // Cấu hình của server
var MongoDB_ColNames MongoDB_Review_CollectionName = *new(MongoDB_Review_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// GetDB trả về database chính của ứng dụng
func GetDB() *mongo.Database {
	if db, exists := RegistryDatabase.Get(MongoDB_ServerConfig.MongoDB_DBName); exists {
		return db
	}
	return MongoDB_Session.Database(MongoDB_ServerConfig.MongoDB_DBName)
}

// GetCollection trả về collection theo tên từ registry, fallback lấy trực tiếp từ database
func GetCollection(name string) *mongo.Collection {
	if col, exists := RegistryCollections.Get(name); exists {
		return col
	}
	return GetDB().Collection(name)
}
